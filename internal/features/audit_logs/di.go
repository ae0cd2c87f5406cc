package audit_logs

import (
	users_services "collabriq-backend/internal/features/users/services"
)

var auditLogService = &AuditLogService{
	auditLogRepository: &AuditLogRepository{},
}

var auditLogController = &AuditLogController{
	auditLogService: auditLogService,
}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}

func GetAuditLogController() *AuditLogController {
	return auditLogController
}

// SetupDependencies hands the audit writer to the users feature, which
// cannot import this package directly.
func SetupDependencies() {
	users_services.GetUserService().SetAuditLogWriter(auditLogService)
}
