package domain

type UserRole string

const (
	UserRoleRenter   UserRole = "RENTER"
	UserRoleSupplier UserRole = "SUPPLIER"
	UserRoleAdmin    UserRole = "ADMIN"
)

type SubscriptionTier string

const (
	SubscriptionTierFree SubscriptionTier = "FREE"
	SubscriptionTierPro  SubscriptionTier = "PRO"
)

type User struct {
	ID               string           `json:"id"`
	Email            string           `json:"email"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	Role             UserRole         `json:"role"`
	SubscriptionTier SubscriptionTier `json:"subscription_tier"`
	District         string           `json:"district"`
	Municipality     string           `json:"municipality"`
	CreatedOn        string           `json:"created_on"`
	UpdatedOn        string           `json:"updated_on"`
}

// FullName joins first and last name, tolerating either being empty.
func (u *User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	return name
}

// IsPro reports whether the user is on the paid tier and therefore gets the
// subscription discount on rental pricing.
func (u *User) IsPro() bool {
	return u.SubscriptionTier == SubscriptionTierPro
}
