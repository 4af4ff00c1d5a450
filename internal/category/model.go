package category

// Category is a per-tenant reference collection entry. Contracts point at it
// by id; the name is unique inside one (group, dealer) scope.
type Category struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	GroupCode  string `gorm:"size:50;not null;uniqueIndex:idx_categories_scope_name" json:"group_code"`
	DealerCode string `gorm:"size:50;not null;uniqueIndex:idx_categories_scope_name" json:"dealer_code"`
	Name       string `gorm:"size:120;not null;uniqueIndex:idx_categories_scope_name" json:"name"`
}

func (Category) TableName() string { return "categories" }

// Input is the payload for create and update.
type Input struct {
	Name string `json:"name"`
}
