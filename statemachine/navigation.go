package statemachine

import (
	"errors"

	"foodexpress/models"
)

// Transition defines a valid page change and whether it needs a
// signed-in session
type Transition struct {
	From         models.Page
	To           models.Page
	RequiresAuth bool
}

// StorefrontPages are the pages reachable after sign-in.
var StorefrontPages = []models.Page{
	models.PageHome,
	models.PageRestaurant,
	models.PageCart,
	models.PageOrders,
}

// validTransitions is the authoritative navigation graph: login is the
// only way off the auth screen (the gate flips the flag before this
// edge is taken), and the four storefront pages are fully connected
// once signed in. There is no logout edge.
var validTransitions = func() []Transition {
	ts := []Transition{
		{From: models.PageAuth, To: models.PageHome, RequiresAuth: true},
	}
	for _, from := range StorefrontPages {
		for _, to := range StorefrontPages {
			ts = append(ts, Transition{From: from, To: to, RequiresAuth: true})
		}
	}
	return ts
}()

type transitionKey struct {
	From models.Page
	To   models.Page
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]Transition {
	m := make(map[transitionKey]Transition)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = t
	}
	return m
}()

// ValidPagesFrom returns all pages reachable from a given page.
func ValidPagesFrom(page models.Page, authenticated bool) []models.Page {
	var nexts []models.Page
	seen := map[models.Page]bool{}
	for _, t := range validTransitions {
		if t.From != page || seen[t.To] {
			continue
		}
		if t.RequiresAuth && !authenticated {
			continue
		}
		nexts = append(nexts, t.To)
		seen[t.To] = true
	}
	return nexts
}

// CanNavigate checks whether the storefront may move between two pages.
func CanNavigate(from, to models.Page, authenticated bool) error {
	t, ok := transitionMap[transitionKey{From: from, To: to}]
	if !ok {
		return errors.New(
			"invalid navigation: " + string(from) + " -> " + string(to) +
				". Valid pages from " + string(from) + " are: " + describeValidFrom(from, authenticated),
		)
	}
	if t.RequiresAuth && !authenticated {
		return errors.New("invalid navigation: sign in before visiting " + string(to))
	}
	return nil
}

func describeValidFrom(page models.Page, authenticated bool) string {
	nexts := ValidPagesFrom(page, authenticated)
	if len(nexts) == 0 {
		return "none"
	}
	result := ""
	for i, p := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(p)
	}
	return result
}

// GetAllTransitions returns the full navigation graph for documentation
func GetAllTransitions() []Transition {
	out := make([]Transition, len(validTransitions))
	copy(out, validTransitions)
	return out
}
