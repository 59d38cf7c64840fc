package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataset_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ds      Dataset
		wantErr string
	}{
		{
			name: "valid records",
			ds: Dataset{
				Groups: []string{"black", "other"},
				Subjects: []Subject{
					{Group: 0, ElapsedTime: 3, Event: true},
					{Group: 1, ElapsedTime: 20, Event: false},
				},
			},
		},
		{
			name: "empty dataset",
			ds:   Dataset{Groups: []string{"black"}},
		},
		{
			name: "group index out of range",
			ds: Dataset{
				Groups: []string{"black"},
				Subjects: []Subject{
					{Group: 0, ElapsedTime: 3, Event: true},
					{Group: 2, ElapsedTime: 3, Event: true},
				},
			},
			wantErr: "subject[1]",
		},
		{
			name: "negative group index",
			ds: Dataset{
				Groups:   []string{"black"},
				Subjects: []Subject{{Group: -1, ElapsedTime: 3, Event: true}},
			},
			wantErr: "subject[0]",
		},
		{
			name: "zero elapsed time",
			ds: Dataset{
				Groups:   []string{"black"},
				Subjects: []Subject{{Group: 0, ElapsedTime: 0, Event: true}},
			},
			wantErr: "elapsed time",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ds.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
