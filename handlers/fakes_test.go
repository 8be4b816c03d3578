package handlers

import (
	"context"
	"errors"

	"careerportal-api/models"
)

var errStorage = errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")

type fakeStore struct {
	nextID int64
	err    error

	payments     []models.PaymentRequest
	resumes      []models.Resume
	resumeUsers  []models.ResumeUser
	experiences  []models.Experience
	applications []models.Application
	statuses     map[int64]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, statuses: map[int64]string{}}
}

func (f *fakeStore) id() int64 {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) InsertPayment(_ context.Context, p *models.PaymentRequest) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.payments = append(f.payments, *p)
	return f.id(), nil
}

func (f *fakeStore) InsertResume(_ context.Context, r *models.Resume) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.resumes = append(f.resumes, *r)
	return f.id(), nil
}

func (f *fakeStore) InsertResumeUser(_ context.Context, u *models.ResumeUser) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.resumeUsers = append(f.resumeUsers, *u)
	return f.id(), nil
}

func (f *fakeStore) InsertExperience(_ context.Context, e *models.Experience) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.experiences = append(f.experiences, *e)
	return f.id(), nil
}

func (f *fakeStore) ListApplications(_ context.Context) ([]models.Application, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.applications, nil
}

func (f *fakeStore) UpdateApplicationStatus(_ context.Context, id int64, status string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, a := range f.applications {
		if a.ID == id {
			f.statuses[id] = status
			return true, nil
		}
	}
	return false, nil
}
