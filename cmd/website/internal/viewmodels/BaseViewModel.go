package viewmodels

import (
	"github.com/adampresley/adamgokit/rendering"
)

type BaseViewModel struct {
	Message            string
	IsError            bool
	IsWarning          bool
	IsHtmx             bool
	JavascriptIncludes []rendering.JavascriptInclude
}

// EventsScript subscribes a page to live task events.
var EventsScript = rendering.JavascriptInclude{Type: "module", Src: "/static/js/events.js"}
