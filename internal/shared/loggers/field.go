package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRunID      = "run_id"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldWorkerID  = "worker_id"
	FieldFile      = "file"
	FieldLogDir    = "log_dir"
	FieldFormatter = "formatter"
	FieldFiles     = "files"
	FieldOwners    = "owners"
)
