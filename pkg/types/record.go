package types

// Record is a single entity returned by the scanner API (a user, policy,
// scan, plugin family, folder, or advanced setting) decoded from its JSON
// object form. Aliases keep JSON decoding and JMESPath evaluation free of
// conversions.
type Record = map[string]any

// Records is a collection of Record, the unit of display.
type Records = []Record
