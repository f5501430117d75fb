package blackboard

import "sync"

// Blackboard is a set of named FIFO mailboxes shared by agents.
// Writers and readers may run concurrently; delivery order within a key is FIFO.
type Blackboard struct {
	lock      *sync.RWMutex
	mailboxes map[string]*mailbox
}

type mailbox struct {
	lock     sync.Mutex
	messages []interface{}
}

func NewBlackboard() *Blackboard {
	return &Blackboard{
		lock:      &sync.RWMutex{},
		mailboxes: make(map[string]*mailbox),
	}
}

func (bb *Blackboard) getMailbox(key string) *mailbox {
	bb.lock.RLock()
	box, present := bb.mailboxes[key]
	bb.lock.RUnlock()

	if present {
		return box
	}

	bb.lock.Lock()
	defer bb.lock.Unlock()

	if box, present = bb.mailboxes[key]; !present {
		box = &mailbox{}
		bb.mailboxes[key] = box
	}

	return box
}

// Write appends msg to the mailbox of key, creating the mailbox if needed.
func (bb *Blackboard) Write(key string, msg interface{}) {
	box := bb.getMailbox(key)

	box.lock.Lock()
	box.messages = append(box.messages, msg)
	box.lock.Unlock()
}

// Read removes and returns the oldest message of key.
func (bb *Blackboard) Read(key string) (interface{}, bool) {
	box := bb.getMailbox(key)

	box.lock.Lock()
	defer box.lock.Unlock()

	if len(box.messages) == 0 {
		return nil, false
	}

	msg := box.messages[0]
	box.messages[0] = nil
	box.messages = box.messages[1:]

	return msg, true
}

// ReadAll drains the mailbox of key, oldest first.
func (bb *Blackboard) ReadAll(key string) []interface{} {
	box := bb.getMailbox(key)

	box.lock.Lock()
	defer box.lock.Unlock()

	messages := box.messages
	box.messages = nil

	if messages == nil {
		return []interface{}{}
	}

	return messages
}

// Size returns the number of pending messages for key.
func (bb *Blackboard) Size(key string) int {
	box := bb.getMailbox(key)

	box.lock.Lock()
	defer box.lock.Unlock()

	return len(box.messages)
}
