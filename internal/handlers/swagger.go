package handlers

// @title Hello World API
// @version 1.0
// @description Demo API: CORS configuration, request introspection, a city directory and an in-memory object store

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /

// @tag.name index
// @tag.description Hello world and form echo

// @tag.name cors
// @tag.description CORS demonstrations

// @tag.name cities
// @tag.description City to state lookups

// @tag.name objects
// @tag.description Key/value object store
