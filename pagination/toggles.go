package pagination

// Switch is the state a style toggle binds to.
type Switch interface {
	Enabled() bool
	SetEnabled(flag bool) bool
}

const (
	StyleToggleID   = "style-toggle"
	DatasetToggleID = "dataset-toggle"
)

// StyleToggle binds a checkbox to s in both directions.
func StyleToggle(label, endpoint string, s Switch) Toggle {
	return Toggle{
		ID:       StyleToggleID,
		Label:    label,
		Endpoint: endpoint,
		Checked:  s.Enabled,
		OnChange: func(checked bool) (Result, error) {
			s.SetEnabled(checked)
			return Result{}, nil
		},
	}
}

// DatasetToggle shows which of two lists is displayed. Flipping it away from
// current navigates to target.
func DatasetToggle(label, endpoint string, current bool, target string) Toggle {
	return Toggle{
		ID:       DatasetToggleID,
		Label:    label,
		Endpoint: endpoint,
		Checked:  func() bool { return current },
		OnChange: func(checked bool) (Result, error) {
			if checked == current {
				return Result{}, nil
			}
			return Result{Redirect: target}, nil
		},
	}
}
