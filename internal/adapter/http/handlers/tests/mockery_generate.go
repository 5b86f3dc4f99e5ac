package tests

// Mock generation for handler tests. The checked-in mocks in mocks_test.go
// follow the same shape.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name ProjectService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename project_service_mock.go --with-expecter
//go:generate mockery --name MembershipService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename membership_service_mock.go --with-expecter
//go:generate mockery --name UserService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename user_service_mock.go --with-expecter
