package intent

//go:generate go run go.uber.org/mock/mockgen -source=./intent.go -destination=./mocks/intent_mock.go -package=mocks

// Intent is what a single chat message asks for. Zero values mean the
// signal was absent.
type Intent struct {
	EntityID string
	Date     string
	Category string
	Confirm  bool
	Payment  bool
}

// Extractor derives an Intent from free text. The bundled implementation
// is a keyword heuristic: it trades recall and precision for zero
// latency, and callers must treat its output as a hint, not a parse.
type Extractor interface {
	Extract(text string) Intent
}
