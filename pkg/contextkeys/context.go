package contextkeys

// Typed key so context values cannot collide with other packages.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB handle
// (pool or transaction) is stored in the gin context.
const DBContextKey = contextKey("db")
