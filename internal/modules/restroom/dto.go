package restroom

// ToiletCounts mirrors the facility pickers on the owner registration form.
type ToiletCounts struct {
	Standing int `json:"standing"`
	Sitting  int `json:"sitting"`
}

type CreateRestroomRequest struct {
	Name           string        `json:"name"`
	Address        string        `json:"address"`
	Latitude       *float64      `json:"latitude"`
	Longitude      *float64      `json:"longitude"`
	IsFree         *bool         `json:"is_free"`
	Price          int64         `json:"price"`
	AdminContact   string        `json:"admin_contact"`
	MaleToilets    *ToiletCounts `json:"maleToilets"`
	FemaleToilets  *ToiletCounts `json:"femaleToilets"`
	DisabledAccess *bool         `json:"disabledAccess"`
	Images         []string      `json:"images"`
}

type UpdateRestroomRequest struct {
	Name           *string       `json:"name"`
	Address        *string       `json:"address"`
	Latitude       *float64      `json:"latitude"`
	Longitude      *float64      `json:"longitude"`
	IsFree         *bool         `json:"is_free"`
	AdminContact   *string       `json:"admin_contact"`
	MaleToilets    *ToiletCounts `json:"maleToilets"`
	FemaleToilets  *ToiletCounts `json:"femaleToilets"`
	DisabledAccess *bool         `json:"disabledAccess"`
	Images         *[]string     `json:"images"`
}

type OwnerInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type OwnerRestroomInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type RegisterOwnerRequest struct {
	Owner     OwnerInfo           `json:"owner"`
	Restrooms []OwnerRestroomInfo `json:"restrooms"`
}
