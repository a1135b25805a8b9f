package opener

import "fmt"

// Kind selects how created paths are opened.
type Kind int

const (
	// Editor opens all paths in one editor invocation.
	Editor Kind = iota

	// Application opens each path with a named application.
	Application
)

// Target is what created paths are handed to.
type Target struct {
	Kind Kind

	// App is the application name, only set for Application
	App string
}

// EditorTarget returns a Target that opens paths in the user's editor.
func EditorTarget() Target {
	return Target{Kind: Editor}
}

// ApplicationTarget returns a Target that opens paths with app.
func ApplicationTarget(app string) Target {
	return Target{Kind: Application, App: app}
}

func (t Target) String() string {
	if t.Kind == Application {
		return fmt.Sprintf("application %q", t.App)
	}
	return "editor"
}
