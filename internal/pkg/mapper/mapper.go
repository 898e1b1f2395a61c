package mapper

import (
	"strings"
)

// Mapper turns extracted documents into editable records and back. It only
// carries table configuration; every method is otherwise pure.
type Mapper struct {
	bulletinTables []TableSpec
	itemsTable     TableSpec
}

// New builds a Mapper whose named tables drop their first row.
func New(trimHeaderTables []string) *Mapper {
	trim := make(map[string]bool, len(trimHeaderTables))
	for _, name := range trimHeaderTables {
		if name = strings.TrimSpace(name); name != "" {
			trim[name] = true
		}
	}

	tables := make([]TableSpec, len(BulletinTables))
	for i, spec := range BulletinTables {
		spec.TrimHeader = trim[spec.Name]
		tables[i] = spec
	}

	items := PrescriptionItemsTable
	items.TrimHeader = trim[items.Name]

	return &Mapper{
		bulletinTables: tables,
		itemsTable:     items,
	}
}

func (m *Mapper) bulletinTable(name string) (TableSpec, bool) {
	for _, spec := range m.bulletinTables {
		if spec.Name == name {
			return spec, true
		}
	}
	return TableSpec{}, false
}
