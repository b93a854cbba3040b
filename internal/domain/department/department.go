package department

import "time"

// QueueEntry is one patient waiting in a department's active queue.
type QueueEntry struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	WaitMins int    `json:"wait_mins"`
}

type Department struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Name        string `gorm:"column:name;type:varchar(200);not null;index" json:"name"`
	Location    string `gorm:"column:location;type:varchar(200)" json:"location"`
	Head        string `gorm:"column:head;type:varchar(200)" json:"head"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Phone       string `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Email       string `gorm:"column:email;type:varchar(255)" json:"email"`

	AvgWaitMins int          `gorm:"column:avg_wait_mins;not null;default:0" json:"avg_wait_mins"`
	ActiveQueue []QueueEntry `gorm:"column:active_queue;serializer:json" json:"active_queue"`
}

func (Department) TableName() string {
	return "frontdesk.departments"
}

// QueueLoad classifies how busy a department's queue is; the monitoring
// screen colors departments by this class.
type QueueLoad string

const (
	QueueLoadNone     QueueLoad = "none"
	QueueLoadShort    QueueLoad = "short"
	QueueLoadModerate QueueLoad = "moderate"
	QueueLoadLong     QueueLoad = "long"
)

func (d *Department) Load() QueueLoad {
	return ClassifyQueue(len(d.ActiveQueue))
}

func ClassifyQueue(length int) QueueLoad {
	switch {
	case length == 0:
		return QueueLoadNone
	case length <= 3:
		return QueueLoadShort
	case length <= 6:
		return QueueLoadModerate
	default:
		return QueueLoadLong
	}
}

type CreateDepartmentCommand struct {
	Name        string
	Location    string
	Head        string
	Description string
	Phone       string
	Email       string
	AvgWaitMins int
}

type UpdateDepartmentCommand struct {
	Name        *string
	Location    *string
	Head        *string
	Description *string
	Phone       *string
	Email       *string
	AvgWaitMins *int
	ActiveQueue *[]QueueEntry
}
