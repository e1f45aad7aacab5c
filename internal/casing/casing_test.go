package casing

import (
	"testing"

	"pgregory.net/rapid"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"user_service", "UserService"},
		{"user-service", "UserService"},
		{"userService", "UserService"},
		{"UserService", "UserService"},
		{"user_service.py", "UserService"},
		{"order_item_detail", "OrderItemDetail"},
		{"user", "User"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ToPascalCase(tt.input); got != tt.expected {
			t.Errorf("ToPascalCase(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"UserService", "user_service"},
		{"userService", "user_service"},
		{"user_service", "user_service"},
		{"user-service", "user_service"},
		{"UserService.java", "user_service"},
		{"OrderItemDetail", "order_item_detail"},
		{"user", "user"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ToSnakeCase(tt.input); got != tt.expected {
			t.Errorf("ToSnakeCase(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestToKebabCase(t *testing.T) {
	if got := ToKebabCase("UserService"); got != "user-service" {
		t.Errorf("ToKebabCase(UserService) = %q, expected user-service", got)
	}
	if got := ToKebabCase("user_service"); got != "user-service" {
		t.Errorf("ToKebabCase(user_service) = %q, expected user-service", got)
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"user_service", "userService"},
		{"UserService", "userService"},
		{"user-service", "userService"},
	}

	for _, tt := range tests {
		if got := ToCamelCase(tt.input); got != tt.expected {
			t.Errorf("ToCamelCase(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestTestFilename(t *testing.T) {
	tests := []struct {
		filename string
		language string
		expected string
	}{
		{"UserService.java", "java", "UserServiceTest.java"},
		{"user_service.py", "python", "test_user_service.py"},
		{"test_user_service.py", "python", "test_user_service.py"},
		{"UserProfile.jsx", "javascript", "UserProfile.test.jsx"},
		{"UserProfile.test.jsx", "javascript", "UserProfile.test.jsx"},
		{"UserProfile.spec.ts", "typescript", "UserProfile.spec.ts"},
		{"component.tsx", "typescript", "component.test.tsx"},
		{"handler.go", "go", "handlerTest.go"},
		{"Makefile", "java", "MakefileTest"},
	}

	for _, tt := range tests {
		if got := TestFilename(tt.filename, tt.language); got != tt.expected {
			t.Errorf("TestFilename(%q, %q) = %q, expected %q",
				tt.filename, tt.language, got, tt.expected)
		}
	}
}

// 변환 함수는 재적용해도 결과가 변하지 않아야 한다
func TestConversionIdempotence(t *testing.T) {
	nameGen := rapid.StringMatching(`[A-Za-z]([A-Za-z_-]{0,30}[A-Za-z])?`)

	t.Run("snake", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			name := nameGen.Draw(t, "name")
			once := ToSnakeCase(name)
			twice := ToSnakeCase(once)
			if once != twice {
				t.Fatalf("ToSnakeCase not idempotent: %q -> %q -> %q", name, once, twice)
			}
		})
	})

	t.Run("pascal", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			name := nameGen.Draw(t, "name")
			once := ToPascalCase(name)
			twice := ToPascalCase(once)
			if once != twice {
				t.Fatalf("ToPascalCase not idempotent: %q -> %q -> %q", name, once, twice)
			}
		})
	})

	t.Run("round-trip", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			name := rapid.StringMatching(`[A-Za-z]{1,20}`).Draw(t, "name")
			pascal := ToPascalCase(name)
			again := ToPascalCase(ToSnakeCase(pascal))
			if pascal != again {
				t.Fatalf("round trip unstable: %q -> %q -> %q", name, pascal, again)
			}
		})
	})
}
