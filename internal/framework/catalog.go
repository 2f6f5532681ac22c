package framework

// Supported framework identifiers. These match the identifiers used by the
// persisted control library.
const (
	ISO27001    ID = "iso27001"
	ISO27002    ID = "iso27002"
	CISControls ID = "cisControls"
	GDPR        ID = "gdpr"
	NIS2        ID = "nis2"
	DORA        ID = "dora"
)

// Catalog lists the supported frameworks. Declaration order here is the
// stable order used for control listings and framework reference strings.
var Catalog = []Framework{
	{ID: ISO27001, Name: "ISO/IEC 27001"},
	{ID: ISO27002, Name: "ISO/IEC 27002"},
	{ID: CISControls, Name: "CIS Controls v8", Tiers: []Tier{TierIG1, TierIG2, TierIG3}},
	{ID: GDPR, Name: "GDPR"},
	{ID: NIS2, Name: "NIS2"},
	{ID: DORA, Name: "DORA"},
}

// DefaultAuthorityOrder ranks frameworks for clause selection when a slot
// collects more candidate clauses than it can keep. This is configuration,
// not something inferred from the data; deployments override it via config.
var DefaultAuthorityOrder = []ID{ISO27001, ISO27002, CISControls, GDPR, NIS2, DORA}

// Lookup returns the catalog entry for id.
func Lookup(id ID) (Framework, bool) {
	for _, f := range Catalog {
		if f.ID == id {
			return f, true
		}
	}
	return Framework{}, false
}

// DisplayName returns the human-readable name for id, falling back to the
// raw identifier for unknown frameworks.
func DisplayName(id ID) string {
	if f, ok := Lookup(id); ok {
		return f.Name
	}
	return string(id)
}

// DeclarationIndex returns the position of id in the catalog. Unknown
// frameworks sort after all known ones.
func DeclarationIndex(id ID) int {
	for i, f := range Catalog {
		if f.ID == id {
			return i
		}
	}
	return len(Catalog)
}
