package models

import "strings"

// Boat is the billing subject a service record is logged against.
// Name is never empty: the API client applies a fallback chain
// (BoatName, Name, BoatNo, placeholder) when mapping responses.
type Boat struct {
	ID   string
	Name string
}

// ContractStatusEligible is the only contract status that allows new
// service submissions. Matched case-insensitively.
const ContractStatusEligible = "contracted"

// Contract ties a boat to billable services.
type Contract struct {
	ID     string
	BoatID string
	Status string
}

// Eligible reports whether new service records may be submitted
// against this contract.
func (c *Contract) Eligible() bool {
	return strings.EqualFold(c.Status, ContractStatusEligible)
}
