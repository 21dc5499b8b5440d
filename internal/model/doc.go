// Package model defines the entity graph resolved from a note export: nodes,
// their properties, and the predicates derived from reserved IDs (trash,
// system nodes, supertag declarations).
package model
