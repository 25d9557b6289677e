package viewstate

// Notice is the "CV not available" dialog flag.
type Notice struct {
	visible bool
}

// Trigger shows the dialog. The download action never succeeds; it always
// lands here.
func (n *Notice) Trigger() { n.visible = true }

// Dismiss hides the dialog.
func (n *Notice) Dismiss() { n.visible = false }

// Visible reports whether the dialog is shown.
func (n Notice) Visible() bool { return n.visible }
