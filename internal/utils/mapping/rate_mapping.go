package mapping

import (
	"github.com/fxtracker/currency_rates_app/internal/core/domain"
	"github.com/fxtracker/currency_rates_app/internal/models"
)

// ToModelCurrencyRate converts a domain CurrencyRate to a model CurrencyRate
func ToModelCurrencyRate(d domain.CurrencyRate) models.CurrencyRate {
	return models.CurrencyRate{
		ID:               d.ID,
		CurrencyCode:     d.CurrencyCode,
		CurrencyName:     d.CurrencyName,
		Rate:             d.Rate,
		ChangePercentage: d.ChangePercentage,
		UpdatedAt:        d.UpdatedAt,
		Version:          d.Version,
	}
}

// ToDomainCurrencyRate converts a model CurrencyRate to a domain CurrencyRate
func ToDomainCurrencyRate(m models.CurrencyRate) domain.CurrencyRate {
	return domain.CurrencyRate{
		ID:               m.ID,
		CurrencyCode:     m.CurrencyCode,
		CurrencyName:     m.CurrencyName,
		Rate:             m.Rate,
		ChangePercentage: m.ChangePercentage,
		UpdatedAt:        m.UpdatedAt,
		Version:          m.Version,
	}
}

// ToModelRateHistory converts a domain RateHistory to a model RateHistory
func ToModelRateHistory(d domain.RateHistory) models.RateHistory {
	return models.RateHistory{
		ID:               d.ID,
		CurrencyCode:     d.CurrencyCode,
		Rate:             d.Rate,
		ChangePercentage: d.ChangePercentage,
		UpdatedAt:        d.UpdatedAt,
	}
}

// ToDomainRateHistory converts a model RateHistory to a domain RateHistory
func ToDomainRateHistory(m models.RateHistory) domain.RateHistory {
	return domain.RateHistory{
		ID:               m.ID,
		CurrencyCode:     m.CurrencyCode,
		Rate:             m.Rate,
		ChangePercentage: m.ChangePercentage,
		UpdatedAt:        m.UpdatedAt,
	}
}
