package models

// ServiceRecord is the JSON payload posted to the ERP when a usage
// event is saved. Field names match the ContractService endpoint.
type ServiceRecord struct {
	ContractId       string  `json:"ContractId"`
	ContractRev      int     `json:"ContractRev"`
	ServiceId        string  `json:"ServiceId"`
	ServiceDate      string  `json:"ServiceDate"`
	Qty              float64 `json:"Qty"`
	Unit             string  `json:"Unit"`
	Price            float64 `json:"Price"`
	BasePrice        float64 `json:"BasePrice"`
	Currency         string  `json:"Currency"`
	Status           string  `json:"Status"`
	BoatId           string  `json:"BoatId,omitempty"`
	InsertedBy       string  `json:"InsertedBy"`
	InsertedDate     string  `json:"InsertedDate"`
	UpdatedBy        string  `json:"UpdatedBy"`
	UpdatedDate      string  `json:"UpdatedDate"`
	PriceRevision    int     `json:"PriceRevision"`
	RevisionDiscount float64 `json:"RevisionDiscount"`
	IsCompleted      bool    `json:"IsCompleted"`
	Description      string  `json:"Description"`
}
