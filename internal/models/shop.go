package models

// Shop is the shops row. Provider and network catalogs are text arrays.
type Shop struct {
	ShopID              string   `json:"shopID"`
	Name                string   `json:"name"`
	ElectronicProviders []string `json:"electronicProviders"`
	CreditNetworks      []string `json:"creditNetworks"`
	AuditFields
}
