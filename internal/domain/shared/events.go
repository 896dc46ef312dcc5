package shared

import (
	"strconv"
	"time"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types. Each event represents something that happened in the
// academic record keeper that other components may want to observe.
const (
	// Roster events
	EventStudentRegistered EventType = "student.registered"

	// Term events
	EventTermOpened      EventType = "term.opened"
	EventStudentEnrolled EventType = "term.student_enrolled"

	// Grading events
	EventEvaluationRecorded EventType = "evaluation.recorded"

	// Staffing events
	EventTeacherSubjectAssigned    EventType = "teacher.subject_assigned"
	EventTeacherAssignmentRejected EventType = "teacher.assignment_rejected"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string

	// Payload returns the event data as a map for logging.
	Payload() map[string]interface{}
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	Type        EventType `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	AggregateId string    `json:"aggregate_id"`
	Version     int       `json:"version"`
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements Event interface.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// NewBaseEvent creates a new base event.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		Type:        eventType,
		Timestamp:   time.Now().UTC(),
		AggregateId: aggregateID,
		Version:     1,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Roster Events
// ═══════════════════════════════════════════════════════════════════════════

// StudentRegisteredEvent is emitted when a student joins the roster.
type StudentRegisteredEvent struct {
	BaseEvent
	FullName string `json:"full_name"`
}

// Payload implements Event interface.
func (e StudentRegisteredEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"full_name": e.FullName,
	}
}

// NewStudentRegisteredEvent creates a new StudentRegisteredEvent.
func NewStudentRegisteredEvent(studentID, fullName string) StudentRegisteredEvent {
	return StudentRegisteredEvent{
		BaseEvent: NewBaseEvent(EventStudentRegistered, studentID),
		FullName:  fullName,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Term Events
// ═══════════════════════════════════════════════════════════════════════════

// TermOpenedEvent is emitted when a term is registered and loaded from the catalog.
type TermOpenedEvent struct {
	BaseEvent
	Term         int `json:"term"`
	SubjectCount int `json:"subject_count"`
}

// Payload implements Event interface.
func (e TermOpenedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"term":          e.Term,
		"subject_count": e.SubjectCount,
	}
}

// NewTermOpenedEvent creates a new TermOpenedEvent.
func NewTermOpenedEvent(term, subjectCount int) TermOpenedEvent {
	return TermOpenedEvent{
		BaseEvent:    NewBaseEvent(EventTermOpened, termAggregateID(term)),
		Term:         term,
		SubjectCount: subjectCount,
	}
}

// StudentEnrolledEvent is emitted when a student is enrolled in a term.
type StudentEnrolledEvent struct {
	BaseEvent
	Term      int    `json:"term"`
	StudentID string `json:"student_id"`
}

// Payload implements Event interface.
func (e StudentEnrolledEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"term":       e.Term,
		"student_id": e.StudentID,
	}
}

// NewStudentEnrolledEvent creates a new StudentEnrolledEvent.
func NewStudentEnrolledEvent(term int, studentID string) StudentEnrolledEvent {
	return StudentEnrolledEvent{
		BaseEvent: NewBaseEvent(EventStudentEnrolled, termAggregateID(term)),
		Term:      term,
		StudentID: studentID,
	}
}

func termAggregateID(term int) string {
	return "term-" + strconv.Itoa(term)
}

// ═══════════════════════════════════════════════════════════════════════════
// Grading Events
// ═══════════════════════════════════════════════════════════════════════════

// EvaluationRecordedEvent is emitted when an academic record is added to the ledger.
type EvaluationRecordedEvent struct {
	BaseEvent
	StudentID  string  `json:"student_id"`
	Subject    string  `json:"subject"`
	Term       int     `json:"term"`
	FinalGrade float64 `json:"final_grade"`
}

// Payload implements Event interface.
func (e EvaluationRecordedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"student_id":  e.StudentID,
		"subject":     e.Subject,
		"term":        e.Term,
		"final_grade": e.FinalGrade,
	}
}

// NewEvaluationRecordedEvent creates a new EvaluationRecordedEvent.
func NewEvaluationRecordedEvent(recordID, studentID, subject string, term int, finalGrade float64) EvaluationRecordedEvent {
	return EvaluationRecordedEvent{
		BaseEvent:  NewBaseEvent(EventEvaluationRecorded, recordID),
		StudentID:  studentID,
		Subject:    subject,
		Term:       term,
		FinalGrade: finalGrade,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Staffing Events
// ═══════════════════════════════════════════════════════════════════════════

// TeacherAssignmentEvent is emitted for both accepted and rejected subject
// assignments; the event type tells them apart.
type TeacherAssignmentEvent struct {
	BaseEvent
	Teacher       string `json:"teacher"`
	Subject       string `json:"subject"`
	AssignedCount int    `json:"assigned_count"`
}

// Payload implements Event interface.
func (e TeacherAssignmentEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"teacher":        e.Teacher,
		"subject":        e.Subject,
		"assigned_count": e.AssignedCount,
	}
}

// NewTeacherAssignmentEvent creates a TeacherAssignmentEvent. accepted selects
// between EventTeacherSubjectAssigned and EventTeacherAssignmentRejected.
func NewTeacherAssignmentEvent(teacher, subject string, assignedCount int, accepted bool) TeacherAssignmentEvent {
	eventType := EventTeacherSubjectAssigned
	if !accepted {
		eventType = EventTeacherAssignmentRejected
	}
	return TeacherAssignmentEvent{
		BaseEvent:     NewBaseEvent(eventType, teacher),
		Teacher:       teacher,
		Subject:       subject,
		AssignedCount: assignedCount,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Bus contracts
// ═══════════════════════════════════════════════════════════════════════════

// EventHandler is a function that handles an event.
type EventHandler func(event Event) error

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	// Publish sends an event to subscribers.
	Publish(event Event) error
}

// EventSubscriber defines the interface for subscribing to events.
type EventSubscriber interface {
	// Subscribe registers a handler for an event type.
	Subscribe(eventType EventType, handler EventHandler) error

	// SubscribeAll registers a handler for all events.
	SubscribeAll(handler EventHandler) error
}

// EventBus combines publishing and subscribing.
type EventBus interface {
	EventPublisher
	EventSubscriber
}

// NopPublisher discards every event. Services fall back to it when no bus is wired.
type NopPublisher struct{}

// Publish implements EventPublisher.
func (NopPublisher) Publish(Event) error { return nil }
