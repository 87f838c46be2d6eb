package middleware

var NewAdminAuthMiddlewareHandlerWithChecker = newAdminAuthMiddlewareHandler
