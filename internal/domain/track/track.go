package track

import "time"

// Step identifies one of the seven fixed workflow steps. Display order is
// the declaration order of Steps below and never changes.
type Step string

const (
	StepInvite   Step = "invite"
	StepRespond  Step = "respond"
	StepDocs     Step = "docs"
	StepDraft    Step = "draft"
	StepSchedule Step = "schedule"
	StepSign     Step = "sign"
	StepPrint    Step = "print"
)

// Steps is the canonical ordered list.
var Steps = []Step{
	StepInvite,
	StepRespond,
	StepDocs,
	StepDraft,
	StepSchedule,
	StepSign,
	StepPrint,
}

// StepCount is fixed at seven; progress percentages are computed against it.
const StepCount = 7

// StepMeta carries the presentation fields clients render per step.
type StepMeta struct {
	Step        Step   `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var stepMeta = map[Step]StepMeta{
	StepInvite:   {StepInvite, "Undang Penghadap", "Undang para penghadap sesuai jumlah yang disyaratkan akta."},
	StepRespond:  {StepRespond, "Konfirmasi Penghadap", "Para penghadap menyetujui atau menolak undangan."},
	StepDocs:     {StepDocs, "Kelengkapan Dokumen", "Pengumpulan dan verifikasi dokumen persyaratan."},
	StepDraft:    {StepDraft, "Draf Akta", "Penyusunan dan persetujuan draf akta."},
	StepSchedule: {StepSchedule, "Jadwal Pembacaan", "Penjadwalan pembacaan akta."},
	StepSign:     {StepSign, "Tanda Tangan", "Penandatanganan akta oleh para pihak."},
	StepPrint:    {StepPrint, "Cetak Akta", "Pencetakan salinan akta."},
}

// MetaFor returns the presentation metadata for a step.
func MetaFor(s Step) StepMeta {
	return stepMeta[s]
}

// ManualSteps are completed by an explicit mark-done action from the notary;
// the remaining steps derive their status from activity data.
var ManualSteps = map[Step]bool{
	StepDocs:     true,
	StepSchedule: true,
	StepSign:     true,
	StepPrint:    true,
}

// IsValidStep reports whether s names one of the seven steps.
func IsValidStep(s Step) bool {
	_, ok := stepMeta[s]
	return ok
}

// Track is one per-step status row for an activity. The table is the single
// source of truth for step state; derived steps are overwritten on recompute
// and only this layer ever writes "pending".
type Track struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	ActivityID uint      `gorm:"not null;index:idx_activity_step,unique" json:"activity_id"`
	Step       string    `gorm:"size:20;not null;index:idx_activity_step,unique" json:"step"`
	Status     string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt  time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Track) TableName() string {
	return "activity_tracks"
}
