package filterset

import (
	"time"

	"github.com/sergeii/cipherhub/internal/core/entities/cipher"
)

type SessionFilterSet struct {
	updatedBefore time.Time
	machine       cipher.Machine
}

func NewSessionFilterSet() SessionFilterSet {
	return SessionFilterSet{}
}

func (fs SessionFilterSet) UpdatedBefore(before time.Time) SessionFilterSet {
	fs.updatedBefore = before
	return fs
}

func (fs SessionFilterSet) GetUpdatedBefore() (time.Time, bool) {
	if fs.updatedBefore.IsZero() {
		return fs.updatedBefore, false
	}
	return fs.updatedBefore, true
}

func (fs SessionFilterSet) WithMachine(machine cipher.Machine) SessionFilterSet {
	fs.machine = machine
	return fs
}

func (fs SessionFilterSet) GetMachine() (cipher.Machine, bool) {
	return fs.machine, fs.machine != ""
}
