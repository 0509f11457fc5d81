package registry

// Registrant is a tagged variant over the three ways someone can be entered
// into an event: a paid member, an identified account holder, or a walk-in
// guest. Each case carries only the fields valid for it.
type Registrant interface {
	classification() string
}

const (
	ClassMember = "member"
	ClassUser   = "user"
	ClassGuest  = "guest"
)

type MemberRegistrant struct {
	Name  string
	Email string
}

func (MemberRegistrant) classification() string { return ClassMember }

type UserRegistrant struct {
	Name    string
	Email   string
	UserRef string
}

func (UserRegistrant) classification() string { return ClassUser }

type GuestRegistrant struct {
	Name  string
	Phone string
}

func (GuestRegistrant) classification() string { return ClassGuest }
