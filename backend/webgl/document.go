//go:build js

package webgl

import "syscall/js"

// DocumentSource resolves shader source from DOM elements: the element with
// a given id, typically a <script> tag holding GLSL, supplies its
// textContent.
type DocumentSource struct {
	Doc js.Value
}

// Document returns a DocumentSource over the global document.
func Document() DocumentSource {
	return DocumentSource{Doc: js.Global().Get("document")}
}

// Lookup finds the element with the given id and returns its text content.
func (d DocumentSource) Lookup(id string) (string, bool) {
	el := d.Doc.Call("getElementById", id)
	if !el.Truthy() {
		return "", false
	}
	return el.Get("textContent").String(), true
}
