package dashpage

// EditOperation is a single search/replace instruction against one file's
// content. Operations are immutable once parsed from a stream.
type EditOperation struct {
	// Search is the text to locate. An empty search text fails the
	// operation.
	Search string

	// Replace is the text spliced in over the matched span.
	Replace string

	// ExpectedReplacements, when non-zero, is the number of occurrences the
	// caller expects. A matching tier that finds a different count fails
	// rather than silently applying to the wrong count. When zero, the
	// first occurrence is replaced.
	ExpectedReplacements int
}

// Validate returns an error if the operation cannot be applied.
func (op EditOperation) Validate() error {
	if op.Search == "" {
		return Errorf(EINVALID, "edit operation search text required")
	}
	return nil
}

// DomAction identifies the kind of structural mutation a DomOperation
// performs.
type DomAction string

// DomAction kinds.
const (
	ActionSetAttribute   DomAction = "setAttribute"
	ActionSetText        DomAction = "setText"
	ActionSetHTML        DomAction = "setHtml"
	ActionAddClass       DomAction = "addClass"
	ActionRemoveClass    DomAction = "removeClass"
	ActionReplaceClass   DomAction = "replaceClass"
	ActionRemove         DomAction = "remove"
	ActionInsertAdjacent DomAction = "insertAdjacent"
)

// InsertPosition identifies where insertAdjacent places new markup relative
// to the matched element.
type InsertPosition string

// InsertPosition values.
const (
	InsertBefore  InsertPosition = "before"  // immediately before the element
	InsertPrepend InsertPosition = "prepend" // as first child
	InsertAppend  InsertPosition = "append"  // as last child
	InsertAfter   InsertPosition = "after"   // immediately after the element
)

// DomOperation is a selector-addressed structural mutation of a document
// tree. Which optional fields are required depends on Action.
type DomOperation struct {
	Selector  string
	Action    DomAction
	Attribute string         // setAttribute
	Value     string         // setAttribute, setText, setHtml, insertAdjacent
	OldClass  string         // removeClass, replaceClass
	NewClass  string         // addClass, replaceClass
	Position  InsertPosition // insertAdjacent
}

// OperationResult reports the outcome of one operation in an apply call.
// Results are returned one per input operation, in input order.
type OperationResult struct {
	Index   int    `json:"index"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
