package entity

// Payload is a decoded upstream JSON object.
// It is handed to the schema layer as is; fields the GraphQL types do not
// declare are simply never selected. It is an alias so resolvers can treat
// it as a plain map.
type Payload = map[string]any
