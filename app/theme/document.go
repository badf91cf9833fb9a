package theme

// DarkClass is the class set on the document root while the dark theme is active.
const DarkClass = "dark"

// Document is the rendered document root. It implements Marker and is read by templates.
type Document struct {
	dark bool
}

// SetDark sets or clears the dark marker.
func (d *Document) SetDark(on bool) { d.dark = on }

// Dark reports whether the dark marker is present.
func (d *Document) Dark() bool { return d.dark }

// RootClass returns the class attribute value for the root element.
func (d *Document) RootClass() string {
	if d.dark {
		return DarkClass
	}
	return ""
}
