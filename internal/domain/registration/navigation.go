package registration

import (
	"time"

	"github.com/yigit/careerhub/internal/app/models"
)

// DefaultNavigationDelay is how long the success message stays up before navigating.
const DefaultNavigationDelay = 5 * time.Second

// Destinations maps roles to the landing view opened after a successful registration.
type Destinations struct {
	Student string
	Staff   string
	Delay   time.Duration
}

// DefaultDestinations returns the stock dashboards.
func DefaultDestinations() Destinations {
	return Destinations{
		Student: "/dashboard/student",
		Staff:   "/dashboard/admin",
		Delay:   DefaultNavigationDelay,
	}
}

// For returns the destination for role.
func (d Destinations) For(role models.Role) string {
	if role == models.RoleStudent {
		return d.Student
	}
	return d.Staff
}

// Navigator performs the navigation once the delay has passed.
type Navigator interface {
	Navigate(destination string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(destination string)

// Navigate implements Navigator.
func (f NavigatorFunc) Navigate(destination string) {
	f(destination)
}

// Scheduler runs f after d. The returned stop function cancels it if it has not run.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// TimeScheduler schedules with time.AfterFunc.
func TimeScheduler() Scheduler {
	return timeScheduler{}
}
