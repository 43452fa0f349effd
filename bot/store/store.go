package store

import "path/filepath"

// Stores bundles the three independently persisted collections.
// Each store serializes its own mutations; the sweeper, the broadcast
// fan-out, and the dialog handlers all share these handles.
type Stores struct {
	Users *UserStore
	Exams *ExamStore
	Files *FileStore
}

// Options locate the collection files.
type Options struct {
	Dir       string
	UsersFile string
	ExamsFile string
	FilesFile string

	// MaxRetainedExams caps the exam collection; 0 keeps unbounded history.
	MaxRetainedExams int
}

// Open loads all three collections. Missing or malformed files start empty.
func Open(opts Options) *Stores {
	dir := opts.Dir
	if dir == "" {
		dir = "data"
	}
	users := opts.UsersFile
	if users == "" {
		users = "users.json"
	}
	exams := opts.ExamsFile
	if exams == "" {
		exams = "exams.json"
	}
	files := opts.FilesFile
	if files == "" {
		files = "files.json"
	}
	return &Stores{
		Users: OpenUserStore(filepath.Join(dir, users)),
		Exams: OpenExamStore(filepath.Join(dir, exams), opts.MaxRetainedExams),
		Files: OpenFileStore(filepath.Join(dir, files)),
	}
}
