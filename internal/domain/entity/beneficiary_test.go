package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/care-pro/internal/domain/entity"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// La clasificación es por edad exacta al momento de la creación, con el
// cumpleaños como frontera.
func TestClassifyBeneficiary(t *testing.T) {
	now := date(2024, 6, 15)

	cases := []struct {
		name string
		dob  time.Time
		want string
	}{
		{"diez años", date(2014, 4, 1), entity.BeneficiaryTypeMineure},
		{"cumple 18 mañana", date(2006, 6, 16), entity.BeneficiaryTypeMineure},
		{"cumple 18 hoy", date(2006, 6, 15), entity.BeneficiaryTypeFemme},
		{"cumplió 18 ayer", date(2006, 6, 14), entity.BeneficiaryTypeFemme},
		{"adulta", date(1990, 1, 1), entity.BeneficiaryTypeFemme},
		{"recién nacida", date(2024, 6, 1), entity.BeneficiaryTypeMineure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.ClassifyBeneficiary(tc.dob, now))
		})
	}
}

func TestValidBeneficiaryStatus(t *testing.T) {
	for _, s := range []string{
		entity.BeneficiaryPendingIntake, entity.BeneficiaryPendingOrientation,
		entity.BeneficiaryOriented, entity.BeneficiaryInFollowup, entity.BeneficiaryInactive,
	} {
		assert.True(t, entity.ValidBeneficiaryStatus(s), s)
	}
	assert.False(t, entity.ValidBeneficiaryStatus("ARCHIVADO"))
	assert.False(t, entity.ValidBeneficiaryStatus(""))
}

func TestAwaitingRouting(t *testing.T) {
	b := &entity.Beneficiary{Status: entity.BeneficiaryPendingOrientation}
	assert.True(t, b.AwaitingRouting())
	b.Status = entity.BeneficiaryOriented
	assert.False(t, b.AwaitingRouting())
}
