package domain

// Shop is one point of sale. The provider and network catalogs list the
// electronic-money providers and credit-airtime networks the shop handles;
// they define which float lines a register closing must account for.
type Shop struct {
	ShopID              string   `json:"shopID"`
	Name                string   `json:"name"`
	ElectronicProviders []string `json:"electronicProviders"` // e.g. "mpesa", "airtel_money"
	CreditNetworks      []string `json:"creditNetworks"`      // e.g. "vodacom", "orange"
	AuditFields
}
