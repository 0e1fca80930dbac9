package lsp

import "sync"

type document struct {
	content string
	result  *AnalysisResult
}

// DocumentStore holds open document contents and their latest analysis,
// keyed by URI.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*document)}
}

// Open stores content and analyzes it.
func (s *DocumentStore) Open(uri, content string) *AnalysisResult {
	return s.Update(uri, content)
}

// Update replaces content and re-analyzes it. While the content has syntax
// errors the palette of the last clean analysis is kept for completion.
func (s *DocumentStore) Update(uri, content string) *AnalysisResult {
	result := Analyze(uri, content)
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.docs[uri]; ok && result.Palette == nil {
		result.Palette = prev.result.Palette
	}
	s.docs[uri] = &document{content: content, result: result}
	return result
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return "", false
	}
	return doc.content, true
}

// Result returns the latest analysis of uri, or nil when it is not open.
func (s *DocumentStore) Result(uri string) *AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return nil
	}
	return doc.result
}
