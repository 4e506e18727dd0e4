package core

// QuestionBank supplies immutable quiz sections, loaded once at startup.
type QuestionBank interface {
	Sections() []Section
	Section(name string) (Section, bool)
}

// AuditSink records domain events, best effort. Implementations must
// never block the caller or surface failures to it.
type AuditSink interface {
	Record(Event)
}
