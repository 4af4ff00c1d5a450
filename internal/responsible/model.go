package responsible

// Responsible is the party accountable for a contract inside one tenant
// scope. Referenced by id from contracts; name unique per scope.
type Responsible struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	GroupCode  string `gorm:"size:50;not null;uniqueIndex:idx_responsibles_scope_name" json:"group_code"`
	DealerCode string `gorm:"size:50;not null;uniqueIndex:idx_responsibles_scope_name" json:"dealer_code"`
	Name       string `gorm:"size:120;not null;uniqueIndex:idx_responsibles_scope_name" json:"name"`
}

func (Responsible) TableName() string { return "responsibles" }

type Input struct {
	Name string `json:"name"`
}
