// Package assets scans Unity's text-serialized scenes, prefabs, and
// generic assets for script component bindings.
//
// Extraction is deliberately pattern-based rather than a full parse of
// the serialization format: the only record shape that matters is the
// m_Script binding with the script-component fileID, and a regexp over
// the raw text finds every one of those without modeling the rest of
// the document.
package assets
