package events

import (
	"encoding/json"
	"log"
	"time"
	"yatube/models"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const (
	SubjectPostCreated = "post.created"
	SubjectPostUpdated = "post.updated"
)

// PostEvent is published after a post is written
type PostEvent struct {
	EventID   string    `json:"event_id"`
	PostID    uint64    `json:"post_id"`
	Author    string    `json:"author"`
	Group     string    `json:"group,omitempty"` // slug
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type publishFunc func(subject string, data []byte) error

var (
	conn    *nats.Conn
	publish publishFunc // nil when NATS is not configured
)

// Init connects to NATS, events are silently dropped if `url` is empty
func Init(url string) error {
	if url == "" {
		return nil
	}
	nc, err := nats.Connect(url,
		nats.Name("yatube"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Printf("NATS disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("NATS reconnected to %s", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return err
	}
	conn = nc
	publish = nc.Publish
	log.Printf("Publishing post events to %s", nc.ConnectedUrl())
	return nil
}

func Close() {
	if conn != nil {
		conn.Drain()
		conn = nil
	}
	publish = nil
}

func NewPostEvent(post *models.Post) PostEvent {
	event := PostEvent{
		EventID:   uuid.NewString(),
		PostID:    post.ID,
		Author:    post.Author.Username,
		Text:      post.Text,
		CreatedAt: time.Unix(post.CreatedAt, 0).UTC(),
	}
	if post.Group != nil {
		event.Group = post.Group.Slug
	}
	return event
}

func PostCreated(post *models.Post) {
	send(SubjectPostCreated, NewPostEvent(post))
}

func PostUpdated(post *models.Post) {
	send(SubjectPostUpdated, NewPostEvent(post))
}

// send never fails the request, errors are only logged
func send(subject string, event PostEvent) {
	if publish == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Cannot marshal %s event: %v", subject, err)
		return
	}
	if err = publish(subject, data); err != nil {
		log.Printf("Cannot publish %s for post %d: %v", subject, event.PostID, err)
	}
}
