package pricing

import (
	"fmt"
	"strings"

	"github.com/coreflow/backend/internal/domain/shared"
)

// Business-rule error constructors. Messages carry the substrings client
// integrations match on, so they are part of the API contract.

// NewUnknownBundleError reports a bundle ID absent from the catalog
func NewUnknownBundleError(id string) *shared.DomainError {
	return shared.NewDomainError(shared.CodeUnknownBundle, fmt.Sprintf("Unknown bundle: %s", id))
}

// NewMinimumSeatsError reports a seat count below a bundle's floor
func NewMinimumSeatsError(bundleID string, minSeats, got int) *shared.DomainError {
	return shared.NewDomainError(shared.CodeMinimumSeats,
		fmt.Sprintf("Bundle %s requires a minimum of %d users, got %d", bundleID, minSeats, got))
}

// NewUnmetDependencyError reports bundles whose dependencies are missing
// from the selection. Missing dependency IDs are named in the message.
func NewUnmetDependencyError(bundleID string, missing []string) *shared.DomainError {
	return shared.NewDomainError(shared.CodeUnmetDependency,
		fmt.Sprintf("Bundle %s has compatibility issues: requires %s", bundleID, strings.Join(missing, ", ")))
}
