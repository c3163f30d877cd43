// Package behavior defines how a draftail editor behaves for a given
// configuration.
//
// It owns the type registry (block types, inline styles, entity types, key
// codes and shortcut labels) and the pure functions derived from the enabled
// types: key binding resolution, autocomplete on input, render maps, the
// content filter applied to pasted or loaded documents, and the stylesheet
// for list nesting beyond the natively styled depths.
//
// Every operation is a pure function of its inputs and is safe for
// concurrent use. Derive a Vocabulary once per configuration change and reuse
// it for every keystroke and paste.
package behavior
