// Package pave (Parse And Validate Everything) turns raw command arguments
// into validated field value objects.
//
// There are two layers.
//
// The field parsers (ParseIndex, ParseName, ParsePhone, ParseGroups and the
// rest) each take one raw token, trim it, check it against its field kind,
// and return either the value object or a *field.FormatError carrying the
// kind's fixed constraint message. The kinds themselves live in the person,
// studentgroup and index packages.
//
// The binding layer fills whole command structs from their tags. A field is
// bound by listing where its value may come from:
//
//	type EditPerson struct {
//	    Index  index.Index      `parse:"preamble:'_'"`
//	    Name   *person.Name     `parse:"arg:'n/,omitempty'"`
//	    Groups studentgroup.Set `parse:"args:'t/,omitempty'"`
//	}
//
// Bindings are tried in order and the first one that finds a value wins. A
// `default:'x'` subtag is used when none does. Every binding is required
// unless marked `omitempty`; a field whose bindings are all `omitempty` is
// left at its zero value (nil for pointers) when nothing is found.
//
// Values are converted through encoding.TextUnmarshaler, so each value object
// validates itself with the same rule as its field parser. List bindings go
// to TextListUnmarshaler implementations such as studentgroup.Set.
//
// Built-in sources:
//   - *Arguments (from Tokenize): `preamble`, `arg` and `args` bindings
//   - *JSONArguments: `json` bindings whose identifiers are gjson paths
//
// To use the package, you may use the exported functions:
//   - Parse(): Bind with the package-level ParserRegistry
//   - WithParser(): Pick a parser when several serve one source type
//   - RegisterParser(): Register a custom parser for a specific source type
//
// Or you may register your own parsers on an instance of ParserRegistry.
//
// Destinations implementing Validatable are checked once every field is
// bound. A destination is zeroed whenever binding or validation fails.
package pave
