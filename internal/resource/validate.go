package resource

import (
	"fmt"

	"github.com/aldermoor/villageforge/internal/domain"
)

// ValidateTransaction checks a transaction against the ledger without
// mutating it. Failures come back as structured errors, tight margins as
// warnings, and every warning carries at least one suggestion.
func (s *service) ValidateTransaction(tx domain.Transaction, state domain.ResourceState) domain.ValidationResult {
	result := domain.ValidationResult{IsValid: true}

	for _, cost := range tx.Costs {
		stock, ok := state.Stocks[cost.Resource]
		if !ok {
			result.IsValid = false
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", domain.ErrMsgUnknownResource, cost.Resource))
			continue
		}

		switch tx.Type {
		case domain.TransactionProduction:
			free := stock.FreeCapacity()
			if free < cost.Amount {
				result.IsValid = false
				result.Errors = append(result.Errors, fmt.Sprintf(
					"%s for %s: need %g, have %g free", domain.ErrMsgInsufficientStorage, cost.Resource, cost.Amount, free))
			} else if free < cost.Amount*WarningHeadroomFactor {
				result.Warnings = append(result.Warnings, fmt.Sprintf(
					"storage for %s is nearly full (%g free for %g produced)", cost.Resource, free, cost.Amount))
				result.Suggestions = append(result.Suggestions, fmt.Sprintf("build storage for %s", cost.Resource))
			}

		default: // consumption, construction, trade, emergency all spend stock
			available := stock.Available()
			if available < cost.Amount {
				result.IsValid = false
				result.Errors = append(result.Errors, fmt.Sprintf(
					"%s for %s: need %g, have %g available", domain.ErrMsgInsufficientStock, cost.Resource, cost.Amount, available))
			} else if available < cost.Amount*WarningHeadroomFactor {
				result.Warnings = append(result.Warnings, fmt.Sprintf(
					"%s is running low (%g available for %g needed)", cost.Resource, available, cost.Amount))
				result.Suggestions = append(result.Suggestions,
					fmt.Sprintf("raise production of %s", cost.Resource),
					fmt.Sprintf("trade for %s", cost.Resource))
			}

			if cost.Quality != nil && *cost.Quality > stock.Quality {
				result.IsValid = false
				result.Errors = append(result.Errors, fmt.Sprintf(
					"%s for %s: need %g, have %g", domain.ErrMsgQualityBelowRequired, cost.Resource, *cost.Quality, stock.Quality))
			}
		}
	}

	return result
}
