// Package dto builds the payloads handed to the HTML templates.
package dto

import (
	"strconv"

	"pairup/internal/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Base carries what every page renders: flash messages and the session state.
type Base struct {
	Errors    []string
	Successes []string
	LoggedIn  bool
	Username  string
}

// GroupView represents a group in page listings and select boxes.
type GroupView struct {
	ID   uint64
	Name string
}

// AssignmentView represents an assignment row.
type AssignmentView struct {
	ID     uint64
	Name   string
	Number string
}

// AvailabilityView is a declared window, formatted for display.
type AvailabilityView struct {
	Assignment string
	Date       string
	Start      string
	End        string
}

// PairingView is a scheduled match, shown from one user's perspective.
type PairingView struct {
	Partner    string
	Assignment string
	Date       string
	Start      string
	End        string
}

// SignupPage feeds the signup form.
type SignupPage struct {
	Base
	Groups []GroupView
}

// ProfilePage feeds the user profile.
type ProfilePage struct {
	Base
	UserID         uint64
	Name           string
	TimeZone       string
	Group          GroupView
	Assignments    []AssignmentView
	Availabilities []AvailabilityView
	Pairings       []PairingView
	Matches        []string
}

// GroupListPage feeds the public group index.
type GroupListPage struct {
	Base
	Groups []GroupView
}

// GroupPage feeds a single group's pages.
type GroupPage struct {
	Base
	Group       GroupView
	Members     []string
	Assignments []AssignmentView
}

// ToGroupView converts a Group model.
func ToGroupView(group models.Group) GroupView {
	return GroupView{
		ID:   group.ID,
		Name: group.Name,
	}
}

// ToGroupViews converts a slice of groups.
func ToGroupViews(groups []models.Group) []GroupView {
	views := make([]GroupView, len(groups))
	for i, g := range groups {
		views[i] = ToGroupView(g)
	}
	return views
}

// ToAssignmentView converts an Assignment model.
func ToAssignmentView(assignment models.Assignment) AssignmentView {
	return AssignmentView{
		ID:     assignment.ID,
		Name:   assignment.Name,
		Number: strconv.FormatFloat(assignment.Number, 'f', -1, 64),
	}
}

// ToAssignmentViews converts a slice of assignments.
func ToAssignmentViews(assignments []models.Assignment) []AssignmentView {
	views := make([]AssignmentView, len(assignments))
	for i, a := range assignments {
		views[i] = ToAssignmentView(a)
	}
	return views
}

// ToAvailabilityViews converts availabilities with assignments preloaded.
func ToAvailabilityViews(availabilities []models.Availability) []AvailabilityView {
	views := make([]AvailabilityView, len(availabilities))
	for i, a := range availabilities {
		views[i] = AvailabilityView{
			Assignment: a.Assignment.Name,
			Date:       a.Date.Format(dateLayout),
			Start:      a.Start.Format(timeLayout),
			End:        a.End.Format(timeLayout),
		}
	}
	return views
}

// ToPairingViews converts pairings from userID's perspective; relations
// must be preloaded.
func ToPairingViews(pairings []models.Pairing, userID uint64) []PairingView {
	views := make([]PairingView, len(pairings))
	for i, p := range pairings {
		views[i] = PairingView{
			Partner:    p.Partner(userID).Username,
			Assignment: p.Assignment.Name,
			Date:       p.Date.Format(dateLayout),
			Start:      p.Start.Format(timeLayout),
			End:        p.End.Format(timeLayout),
		}
	}
	return views
}

// Usernames extracts usernames from a slice of users.
func Usernames(users []models.User) []string {
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Username
	}
	return names
}
