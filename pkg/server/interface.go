/*
Package server implements msgpack IPC for word completion services.

The server reads a stream of msgpack maps from stdin and answers each one on
stdout, in order. Every message carries an ID that is echoed back.

Completion requests:

	{"id": "req_001", "p": "app", "l": 10}

are answered with suggestions in alphabetical pre-order; "r" is the 1-based
position:

	{"id": "req_001", "s": [{"w": "app", "r": 1}, {"w": "apple", "r": 2}], "c": 2, "t": 12}

Dictionary requests carry an action:

	{"id": "d1", "action": "add", "w": "wordtrie"}
	{"id": "d2", "action": "reload"}
	{"id": "d3", "action": "stats"}

and are answered with a DictionaryResponse. A DictionaryResponse with status
"ready" is written once, before the first request is read.

Invalid requests get a CompletionError and the loop continues. A prefix
shorter than the configured minimum is not an error; it simply has no
suggestions.
*/
package server

// CompletionRequest - minimal completion request
type CompletionRequest struct {
	ID     string `msgpack:"id"`
	Prefix string `msgpack:"p"`
	Limit  int    `msgpack:"l,omitempty"`
}

// CompletionSuggestion - minimal suggestion response
type CompletionSuggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// CompletionResponse - completion response, TimeTaken in microseconds
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// Dictionary actions.
const (
	ActionComplete = "complete"
	ActionAdd      = "add"
	ActionReload   = "reload"
	ActionStats    = "stats"
)

// DictionaryRequest - dictionary management request
type DictionaryRequest struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`
	Word   string `msgpack:"w,omitempty"` // for "add"
}

// DictionaryResponse - dictionary operation response
type DictionaryResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Error  string `msgpack:"error,omitempty"`
	Words  int    `msgpack:"words"`
	Nodes  int    `msgpack:"nodes"`
}

// CompletionError holds basic error information for any failed request
type CompletionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// request is the union of every inbound message shape.
type request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`
	Prefix string `msgpack:"p"`
	Limit  int    `msgpack:"l"`
	Word   string `msgpack:"w"`
}
