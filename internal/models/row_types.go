package models

// Row is one result row keyed by column name. It is used for database views
// whose column set belongs to the schema, not to this code.
type Row map[string]any
