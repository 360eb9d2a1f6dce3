// Package mesh holds the unstructured quad mesh produced by
// grain-boundary extraction: a shared vertex list plus four-node
// connectivity per face. Writers for external formats consume it
// through the exported fields.
package mesh
