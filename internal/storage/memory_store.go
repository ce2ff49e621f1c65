package storage

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/workbridge/jobboard-backend/internal/models"
)

// MemStore is the in-memory backend, used by tests and by local runs
// without a database. Multi-step mutations take a snapshot first and
// restore it if any step fails, so its atomicity matches GormStore.
type MemStore struct {
	mu sync.RWMutex

	users           map[uint]models.User
	jobSeekers      map[uint]models.JobSeeker
	employers       map[uint]models.Employer
	admins          map[uint]models.Admin
	jobs            map[uint]models.Job
	applications    map[uint]models.Application
	vacancies       map[uint]models.Vacancy
	inquiries       map[uint]models.StaffingInquiry
	blogPosts       map[uint]models.BlogPost
	notifications   map[uint]models.Notification
	invitationCodes map[uint]models.InvitationCode
	refreshTokens   map[uint]models.RefreshToken

	seq map[string]uint

	// cascadeHook, when set, is called before each cascade step and lets
	// tests force a mid-cascade failure.
	cascadeHook func(step string) error
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		users:           make(map[uint]models.User),
		jobSeekers:      make(map[uint]models.JobSeeker),
		employers:       make(map[uint]models.Employer),
		admins:          make(map[uint]models.Admin),
		jobs:            make(map[uint]models.Job),
		applications:    make(map[uint]models.Application),
		vacancies:       make(map[uint]models.Vacancy),
		inquiries:       make(map[uint]models.StaffingInquiry),
		blogPosts:       make(map[uint]models.BlogPost),
		notifications:   make(map[uint]models.Notification),
		invitationCodes: make(map[uint]models.InvitationCode),
		refreshTokens:   make(map[uint]models.RefreshToken),
		seq:             make(map[string]uint),
	}
}

func (s *MemStore) next(entity string) uint {
	s.seq[entity]++
	return s.seq[entity]
}

// snapshot copies every table touched by the cascades. Values are stored
// by value, so copying the maps is a full deep copy.
type memSnapshot struct {
	users         map[uint]models.User
	jobSeekers    map[uint]models.JobSeeker
	employers     map[uint]models.Employer
	admins        map[uint]models.Admin
	jobs          map[uint]models.Job
	applications  map[uint]models.Application
	blogPosts     map[uint]models.BlogPost
	notifications map[uint]models.Notification
	refreshTokens map[uint]models.RefreshToken
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *MemStore) snapshot() memSnapshot {
	return memSnapshot{
		users:         copyMap(s.users),
		jobSeekers:    copyMap(s.jobSeekers),
		employers:     copyMap(s.employers),
		admins:        copyMap(s.admins),
		jobs:          copyMap(s.jobs),
		applications:  copyMap(s.applications),
		blogPosts:     copyMap(s.blogPosts),
		notifications: copyMap(s.notifications),
		refreshTokens: copyMap(s.refreshTokens),
	}
}

func (s *MemStore) restore(snap memSnapshot) {
	s.users = snap.users
	s.jobSeekers = snap.jobSeekers
	s.employers = snap.employers
	s.admins = snap.admins
	s.jobs = snap.jobs
	s.applications = snap.applications
	s.blogPosts = snap.blogPosts
	s.notifications = snap.notifications
	s.refreshTokens = snap.refreshTokens
}

func (s *MemStore) step(name string) error {
	if s.cascadeHook != nil {
		return s.cascadeHook(name)
	}
	return nil
}

// --- Users ---

func (s *MemStore) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}

	u.ID = s.next("users")
	u.CreatedAt = time.Now()
	s.users[u.ID] = *u
	return nil
}

func (s *MemStore) GetUser(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) ListUsers() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID > users[j].ID })
	return users, nil
}

func (s *MemStore) DeleteUser(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}

	snap := s.snapshot()
	if err := s.deleteUserLocked(id); err != nil {
		s.restore(snap)
		return fmt.Errorf("%w: delete user %d: %v", ErrTransactionFailure, id, err)
	}
	return nil
}

func (s *MemStore) deleteUserLocked(id uint) error {
	if err := s.step("admin_profile"); err != nil {
		return err
	}
	for aid, a := range s.admins {
		if a.UserID == id {
			delete(s.admins, aid)
		}
	}

	if err := s.step("job_seeker"); err != nil {
		return err
	}
	for jsid, js := range s.jobSeekers {
		if js.UserID != id {
			continue
		}
		for appID, app := range s.applications {
			if app.JobSeekerID == jsid {
				delete(s.applications, appID)
			}
		}
		delete(s.jobSeekers, jsid)
	}

	if err := s.step("employer"); err != nil {
		return err
	}
	for eid, e := range s.employers {
		if e.UserID != id {
			continue
		}
		for jid, job := range s.jobs {
			if job.EmployerID != eid {
				continue
			}
			for appID, app := range s.applications {
				if app.JobID == jid {
					delete(s.applications, appID)
				}
			}
			delete(s.jobs, jid)
		}
		delete(s.employers, eid)
	}

	if err := s.step("blog_posts"); err != nil {
		return err
	}
	for pid, p := range s.blogPosts {
		if p.AuthorID != nil && *p.AuthorID == id {
			p.AuthorID = nil
			s.blogPosts[pid] = p
		}
	}

	if err := s.step("notifications"); err != nil {
		return err
	}
	for nid, n := range s.notifications {
		if n.UserID == id {
			delete(s.notifications, nid)
		}
	}

	if err := s.step("refresh_tokens"); err != nil {
		return err
	}
	for tid, t := range s.refreshTokens {
		if t.UserID == id {
			delete(s.refreshTokens, tid)
		}
	}

	if err := s.step("user"); err != nil {
		return err
	}
	delete(s.users, id)
	return nil
}

// --- Job seekers ---

func (s *MemStore) CreateJobSeeker(js *models.JobSeeker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	js.ID = s.next("job_seekers")
	js.CreatedAt = time.Now()
	s.jobSeekers[js.ID] = *js
	return nil
}

func (s *MemStore) GetJobSeeker(id uint) (*models.JobSeeker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	js, ok := s.jobSeekers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &js, nil
}

func (s *MemStore) GetJobSeekerByUserID(userID uint) (*models.JobSeeker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, js := range s.jobSeekers {
		if js.UserID == userID {
			out := js
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) UpdateJobSeeker(js *models.JobSeeker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobSeekers[js.ID]; !ok {
		return ErrNotFound
	}
	s.jobSeekers[js.ID] = *js
	return nil
}

// --- Employers ---

func (s *MemStore) CreateEmployer(e *models.Employer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.next("employers")
	e.CreatedAt = time.Now()
	s.employers[e.ID] = *e
	return nil
}

func (s *MemStore) GetEmployer(id uint) (*models.Employer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.employers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (s *MemStore) GetEmployerByUserID(userID uint) (*models.Employer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employers {
		if e.UserID == userID {
			out := e
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) UpdateEmployer(e *models.Employer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employers[e.ID]; !ok {
		return ErrNotFound
	}
	s.employers[e.ID] = *e
	return nil
}

// --- Admins ---

func (s *MemStore) CreateAdmin(a *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.next("admins")
	a.CreatedAt = time.Now()
	s.admins[a.ID] = *a
	return nil
}

func (s *MemStore) GetAdminByUserID(userID uint) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.admins {
		if a.UserID == userID {
			out := a
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) UpdateAdmin(a *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.admins[a.ID]; !ok {
		return ErrNotFound
	}
	s.admins[a.ID] = *a
	return nil
}

// --- Jobs ---

func (s *MemStore) CreateJob(j *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	j.ID = s.next("jobs")
	now := time.Now()
	j.CreatedAt = now
	j.UpdatedAt = now
	s.jobs[j.ID] = *j
	return nil
}

func (s *MemStore) GetJob(id uint) (*models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &j, nil
}

func (s *MemStore) GetJobs(filter JobFilter) ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]models.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if matchesFilter(j, filter) {
			jobs = append(jobs, j)
		}
	}
	// IDs are monotonic, so descending ID is newest-created first.
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID > jobs[j].ID })
	return jobs, nil
}

func matchesFilter(j models.Job, f JobFilter) bool {
	if f.Category != "" && j.Category != f.Category {
		return false
	}
	if f.JobType != "" && j.JobType != f.JobType {
		return false
	}
	if f.Experience != "" && j.Experience != f.Experience {
		return false
	}
	if f.Location != "" && !containsFold(j.Location, f.Location) {
		return false
	}
	if f.Specialization != "" && !containsFold(j.Specialization, f.Specialization) {
		return false
	}
	if f.MinSalary != nil && j.SalaryMax < *f.MinSalary {
		return false
	}
	if f.MaxSalary != nil && j.SalaryMin > *f.MaxSalary {
		return false
	}
	if f.Keyword != "" {
		if !containsFold(j.Title, f.Keyword) &&
			!containsFold(j.Description, f.Keyword) &&
			!containsFold(j.Company, f.Keyword) &&
			!containsFold(j.Requirements, f.Keyword) {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (s *MemStore) GetJobsByEmployer(employerID uint) ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var jobs []models.Job
	for _, j := range s.jobs {
		if j.EmployerID == employerID {
			jobs = append(jobs, j)
		}
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID > jobs[j].ID })
	return jobs, nil
}

func (s *MemStore) GetJobsSince(id uint) ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var jobs []models.Job
	for _, j := range s.jobs {
		if j.ID > id {
			jobs = append(jobs, j)
		}
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })
	return jobs, nil
}

func (s *MemStore) UpdateJob(j *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[j.ID]; !ok {
		return ErrNotFound
	}
	j.UpdatedAt = time.Now()
	s.jobs[j.ID] = *j
	return nil
}

func (s *MemStore) DeleteJob(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return ErrNotFound
	}

	snap := s.snapshot()
	if err := s.step("job_applications"); err != nil {
		s.restore(snap)
		return fmt.Errorf("%w: delete job %d: %v", ErrTransactionFailure, id, err)
	}
	for appID, app := range s.applications {
		if app.JobID == id {
			delete(s.applications, appID)
		}
	}
	if err := s.step("job"); err != nil {
		s.restore(snap)
		return fmt.Errorf("%w: delete job %d: %v", ErrTransactionFailure, id, err)
	}
	delete(s.jobs, id)
	return nil
}

// --- Applications ---

func (s *MemStore) CreateApplication(a *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[a.JobID]
	if !ok {
		return ErrConstraintViolation
	}
	if _, ok := s.jobSeekers[a.JobSeekerID]; !ok {
		return ErrConstraintViolation
	}

	a.ID = s.next("applications")
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Status == "" {
		a.Status = models.ApplicationStatusNew
	}
	s.applications[a.ID] = *a

	job.ApplicationCount++
	s.jobs[job.ID] = job
	return nil
}

func (s *MemStore) GetApplication(id uint) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.applications[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (s *MemStore) GetApplicationsByJob(jobID uint) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var apps []models.Application
	for _, a := range s.applications {
		if a.JobID == jobID {
			apps = append(apps, a)
		}
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID > apps[j].ID })
	return apps, nil
}

func (s *MemStore) GetApplicationsByJobSeeker(jobSeekerID uint) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var apps []models.Application
	for _, a := range s.applications {
		if a.JobSeekerID == jobSeekerID {
			apps = append(apps, a)
		}
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID > apps[j].ID })
	return apps, nil
}

func (s *MemStore) UpdateApplicationStatus(id uint, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.applications[id]
	if !ok {
		return ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = time.Now()
	s.applications[id] = a
	return nil
}

func (s *MemStore) DeleteApplication(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.applications[id]; !ok {
		return ErrNotFound
	}
	delete(s.applications, id)
	return nil
}

// --- Vacancies ---

func (s *MemStore) CreateVacancy(v *models.Vacancy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v.ID = s.next("vacancies")
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now
	if v.Status == "" {
		v.Status = models.SubmissionStatusNew
	}
	s.vacancies[v.ID] = *v
	return nil
}

func (s *MemStore) GetVacancy(id uint) (*models.Vacancy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vacancies[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &v, nil
}

func (s *MemStore) ListVacancies(status string) ([]models.Vacancy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var vacancies []models.Vacancy
	for _, v := range s.vacancies {
		if status == "" || v.Status == status {
			vacancies = append(vacancies, v)
		}
	}
	sort.Slice(vacancies, func(i, j int) bool { return vacancies[i].ID > vacancies[j].ID })
	return vacancies, nil
}

func (s *MemStore) UpdateVacancyStatus(id uint, status string, assignedAdminID *uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vacancies[id]
	if !ok {
		return ErrNotFound
	}
	if !models.CanTransition(v.Status, status) {
		return fmt.Errorf("%w: vacancy %s -> %s", ErrInvalidTransition, v.Status, status)
	}
	v.Status = status
	if assignedAdminID != nil {
		v.AssignedAdminID = assignedAdminID
	}
	v.UpdatedAt = time.Now()
	s.vacancies[id] = v
	return nil
}

func (s *MemStore) DeleteVacancy(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vacancies[id]; !ok {
		return ErrNotFound
	}
	delete(s.vacancies, id)
	return nil
}

// --- Staffing inquiries ---

func (s *MemStore) CreateInquiry(q *models.StaffingInquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q.ID = s.next("inquiries")
	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now
	if q.Status == "" {
		q.Status = models.SubmissionStatusNew
	}
	s.inquiries[q.ID] = *q
	return nil
}

func (s *MemStore) GetInquiry(id uint) (*models.StaffingInquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.inquiries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &q, nil
}

func (s *MemStore) ListInquiries(status string) ([]models.StaffingInquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var inquiries []models.StaffingInquiry
	for _, q := range s.inquiries {
		if status == "" || q.Status == status {
			inquiries = append(inquiries, q)
		}
	}
	sort.Slice(inquiries, func(i, j int) bool { return inquiries[i].ID > inquiries[j].ID })
	return inquiries, nil
}

func (s *MemStore) UpdateInquiryStatus(id uint, status string, assignedAdminID *uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.inquiries[id]
	if !ok {
		return ErrNotFound
	}
	if !models.CanTransition(q.Status, status) {
		return fmt.Errorf("%w: inquiry %s -> %s", ErrInvalidTransition, q.Status, status)
	}
	q.Status = status
	if assignedAdminID != nil {
		q.AssignedAdminID = assignedAdminID
	}
	q.UpdatedAt = time.Now()
	s.inquiries[id] = q
	return nil
}

func (s *MemStore) DeleteInquiry(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inquiries[id]; !ok {
		return ErrNotFound
	}
	delete(s.inquiries, id)
	return nil
}

// --- Blog posts ---

func (s *MemStore) CreateBlogPost(p *models.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.next("blog_posts")
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.blogPosts[p.ID] = *p
	return nil
}

func (s *MemStore) GetBlogPost(id uint) (*models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.blogPosts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemStore) ListBlogPosts(publishedOnly bool) ([]models.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var posts []models.BlogPost
	for _, p := range s.blogPosts {
		if !publishedOnly || p.Published {
			posts = append(posts, p)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	return posts, nil
}

func (s *MemStore) UpdateBlogPost(p *models.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogPosts[p.ID]; !ok {
		return ErrNotFound
	}
	p.UpdatedAt = time.Now()
	s.blogPosts[p.ID] = *p
	return nil
}

func (s *MemStore) DeleteBlogPost(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogPosts[id]; !ok {
		return ErrNotFound
	}
	delete(s.blogPosts, id)
	return nil
}

// --- Notifications ---

func (s *MemStore) CreateNotification(n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = s.next("notifications")
	n.CreatedAt = time.Now()
	s.notifications[n.ID] = *n
	return nil
}

func (s *MemStore) ListNotifications(userID uint, unreadOnly bool) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var notifications []models.Notification
	for _, n := range s.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		notifications = append(notifications, n)
	}
	sort.Slice(notifications, func(i, j int) bool { return notifications[i].ID > notifications[j].ID })
	return notifications, nil
}

func (s *MemStore) GetNotificationsSince(userID, sinceID uint) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var notifications []models.Notification
	for _, n := range s.notifications {
		if n.UserID == userID && n.ID > sinceID {
			notifications = append(notifications, n)
		}
	}
	sort.Slice(notifications, func(i, j int) bool { return notifications[i].ID < notifications[j].ID })
	return notifications, nil
}

func (s *MemStore) MarkNotificationAsRead(userID, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok || n.UserID != userID {
		return ErrNotFound
	}
	if !n.Read {
		n.Read = true
		s.notifications[id] = n
	}
	return nil
}

func (s *MemStore) MarkAllNotificationsAsRead(userID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for id, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			s.notifications[id] = n
			changed = true
		}
	}
	return changed, nil
}

// --- Invitation codes ---

func (s *MemStore) CreateInvitationCode(c *models.InvitationCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.invitationCodes {
		if existing.Code == c.Code {
			return ErrConstraintViolation
		}
	}

	c.ID = s.next("invitation_codes")
	c.CreatedAt = time.Now()
	s.invitationCodes[c.ID] = *c
	return nil
}

func (s *MemStore) VerifyInvitationCode(code, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.invitationCodes {
		if c.Code == code && c.Email == email {
			return !c.IsUsed && c.ExpiresAt.After(time.Now()), nil
		}
	}
	return false, nil
}

func (s *MemStore) MarkInvitationCodeAsUsed(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, c := range s.invitationCodes {
		if c.Code == code {
			c.IsUsed = true
			s.invitationCodes[id] = c
			return nil
		}
	}
	return ErrNotFound
}

// --- Refresh tokens ---

func (s *MemStore) CreateRefreshToken(t *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.next("refresh_tokens")
	t.CreatedAt = time.Now()
	s.refreshTokens[t.ID] = *t
	return nil
}

func (s *MemStore) GetRefreshTokenByHash(hash string) (*models.RefreshToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.refreshTokens {
		if t.TokenHash == hash {
			out := t
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) RevokeRefreshToken(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.refreshTokens[id]
	if !ok {
		return ErrNotFound
	}
	t.Revoked = true
	s.refreshTokens[id] = t
	return nil
}

func (s *MemStore) RevokeUserRefreshTokens(userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.refreshTokens {
		if t.UserID == userID {
			t.Revoked = true
			s.refreshTokens[id] = t
		}
	}
	return nil
}

func (s *MemStore) Ping() error {
	return nil
}
