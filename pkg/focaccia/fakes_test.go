package focaccia

// Shared test doubles for the host-side interfaces.

type fakeElement struct {
	doc        *fakeDoc
	detached   bool
	focusCount int
}

func (e *fakeElement) Focus() {
	e.focusCount++
	if e.doc != nil {
		e.doc.active = e
	}
}

func (e *fakeElement) Attached() bool {
	return !e.detached
}

type fakeDoc struct {
	active *fakeElement
}

func (d *fakeDoc) ActiveElement() Element {
	if d.active == nil {
		return nil
	}
	return d.active
}

type fakeRegion struct {
	texts      []string
	politeness Politeness
	detached   bool
}

func (r *fakeRegion) SetText(text string) {
	r.texts = append(r.texts, text)
}

func (r *fakeRegion) SetPoliteness(p Politeness) {
	r.politeness = p
}

func (r *fakeRegion) Attached() bool {
	return !r.detached
}

// messages returns the non-empty writes, i.e. the announcements that reached
// the region (the empty strings in between are the pre-write clears).
func (r *fakeRegion) messages() []string {
	var out []string
	for _, t := range r.texts {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

type fakeContainer struct {
	els []Element
}

func (c *fakeContainer) FocusableDescendants() []Element {
	return c.els
}

// healthItems builds the canonical three-item fixture used across tests.
func healthItems(doc *fakeDoc) ([]NavItem, []*fakeElement) {
	els := []*fakeElement{{doc: doc}, {doc: doc}, {doc: doc}}
	items := []NavItem{
		{ID: "dashboard", Label: "Dashboard", Element: els[0]},
		{ID: "water", Label: "Water Intake", Element: els[1]},
		{ID: "workouts", Label: "Workouts", Element: els[2]},
	}
	return items, els
}
