package files

// File correlates a stored object with its contract. A contract has at most
// one linked file, and an object key appears at most once.
type File struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ContractID uint   `gorm:"not null;uniqueIndex" json:"contract_id"`
	Path       string `gorm:"size:300;not null;uniqueIndex" json:"path"`
	Filename   string `gorm:"size:200;not null" json:"filename"`
	Size       int64  `json:"size"`
}

func (File) TableName() string { return "files" }

type LinkInput struct {
	Filepath   string `json:"filepath"`
	ContractID uint   `json:"contract_id"`
}

type UnlinkInput struct {
	Filepath string `json:"filepath"`
}

type Created struct {
	Path string `json:"path"`
}
