package entities

import "time"

// ParamCategory enumerates the configurable proposal parameter groups.
type ParamCategory string

const (
	ParamPagtoEquip   ParamCategory = "pagto_equip"
	ParamPrazoEntrega ParamCategory = "prazo_entrega"
	ParamFrete        ParamCategory = "frete"
	ParamValidade     ParamCategory = "validade"
	ParamGarantiaEq   ParamCategory = "garantia_eq"
	ParamGarantiaSys  ParamCategory = "garantia_sys"
)

// ValidParamCategory reports whether the value names a known category.
func ValidParamCategory(c ParamCategory) bool {
	switch c {
	case ParamPagtoEquip, ParamPrazoEntrega, ParamFrete,
		ParamValidade, ParamGarantiaEq, ParamGarantiaSys:
		return true
	}
	return false
}

// ParamOption is one selectable value for a proposal parameter category.
//
// Storage model (DynamoDB):
//   - PK: id
//   - (category, label) unique by convention, enforced at creation.
type ParamOption struct {
	ID          string        `json:"id"`
	Category    ParamCategory `json:"category"`
	Label       string        `json:"label"`
	CreatedByID string        `json:"created_by_id"`
	CreatedAt   time.Time     `json:"created_at"`
}
