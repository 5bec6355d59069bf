package wayline_test

import (
	"fmt"

	"github.com/aretw0/wayline"
	"github.com/aretw0/wayline/pkg/domain"
	"github.com/aretw0/wayline/pkg/ports"
)

// screen is a minimal handler that prints each transition and completes
// immediately, the way a real UI handler would after its animation ends.
type screen struct {
	name string
}

func (s screen) PushSegment(segment domain.Segment, animated bool, completion ports.CompletionFunc) ports.Handler {
	fmt.Printf("%s shows %s\n", s.name, segment)
	completion()
	return screen{name: string(segment)}
}

func (s screen) PopSegment(segment domain.Segment, animated bool, completion ports.CompletionFunc) {
	fmt.Printf("%s dismisses %s\n", s.name, segment)
	completion()
}

func (s screen) ChangeSegment(from, to domain.Segment, animated bool, completion ports.CompletionFunc) ports.Handler {
	fmt.Printf("%s swaps %s for %s\n", s.name, from, to)
	completion()
	return screen{name: string(to)}
}

func Example() {
	applied := make(chan struct{})
	router := wayline.New(screen{name: "root"},
		wayline.WithLifecycleHooks(domain.LifecycleHooks{
			OnBatchApplied: func(*domain.BatchEvent) { applied <- struct{}{} },
		}),
	)
	defer router.Close()

	router.OnRouteChanged(domain.NewNavigationState(domain.NewRoute("home", "details")))
	<-applied
	router.OnRouteChanged(domain.NewNavigationState(domain.NewRoute("home", "help")))
	<-applied

	fmt.Println("route:", router.CurrentRoute())
	// Output:
	// root shows home
	// home shows details
	// home swaps details for help
	// route: /home/help
}
