// File path: internal/icd/descriptions.go
package icd

// DescriptionNotFound is returned for codes outside the embedded table so
// prompts always have something to interpolate.
const DescriptionNotFound = "Description not found"

// descriptions holds the official short titles for the codes this service
// encounters most often in its coding feeds. The table is intentionally
// small; unknown codes fall back to DescriptionNotFound and the LLM judges
// the code against the summary alone.
var descriptions = map[string]string{
	"A41.9":   "Sepsis, unspecified organism",
	"C34.90":  "Malignant neoplasm of unspecified part of unspecified bronchus or lung",
	"C34.9":   "Malignant neoplasm of bronchus or lung, unspecified",
	"C70.9":   "Malignant neoplasm of meninges, unspecified",
	"C71.9":   "Malignant neoplasm of brain, unspecified",
	"C79.31":  "Secondary malignant neoplasm of brain",
	"E03.9":   "Hypothyroidism, unspecified",
	"E10.9":   "Type 1 diabetes mellitus without complications",
	"E11.9":   "Type 2 diabetes mellitus without complications",
	"E66.9":   "Obesity, unspecified",
	"E78.5":   "Hyperlipidemia, unspecified",
	"F32.9":   "Major depressive disorder, single episode, unspecified",
	"G20":     "Parkinson's disease",
	"G40.909": "Epilepsy, unspecified, not intractable, without status epilepticus",
	"G43.909": "Migraine, unspecified, not intractable, without status migrainosus",
	"G51.0":   "Bell's palsy",
	"G91.1":   "Obstructive hydrocephalus",
	"G93.5":   "Compression of brain",
	"G93.6":   "Cerebral edema",
	"I10":     "Essential (primary) hypertension",
	"I21.9":   "Acute myocardial infarction, unspecified",
	"I25.10":  "Atherosclerotic heart disease of native coronary artery without angina pectoris",
	"I47.0":   "Re-entry ventricular arrhythmia",
	"I48.91":  "Unspecified atrial fibrillation",
	"I50.9":   "Heart failure, unspecified",
	"I63.9":   "Cerebral infarction, unspecified",
	"I67.0":   "Dissection of cerebral arteries, nonruptured",
	"J18.9":   "Pneumonia, unspecified organism",
	"J44.9":   "Chronic obstructive pulmonary disease, unspecified",
	"J45.909": "Unspecified asthma, uncomplicated",
	"K21.9":   "Gastro-esophageal reflux disease without esophagitis",
	"M54.5":   "Low back pain",
	"N17.9":   "Acute kidney failure, unspecified",
	"N18.9":   "Chronic kidney disease, unspecified",
	"N39.0":   "Urinary tract infection, site not specified",
	"R00.1":   "Bradycardia, unspecified",
	"R05.9":   "Cough, unspecified",
	"R07.9":   "Chest pain, unspecified",
	"R33.9":   "Retention of urine, unspecified",
	"R39.15":  "Urgency of urination",
	"R41.0":   "Disorientation, unspecified",
	"R47.1":   "Dysarthria and anarthria",
	"R51.9":   "Headache, unspecified",
	"Z79.4":   "Long term (current) use of insulin",
}

// Describe returns the short title for a normalized ICD-10 code, or
// DescriptionNotFound when the table does not cover it.
func Describe(code string) string {
	if desc, ok := descriptions[Normalize(code)]; ok {
		return desc
	}
	return DescriptionNotFound
}
