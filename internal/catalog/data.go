package catalog

import (
	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
)

const na = entities.UnitNotApplicable

func param(name, unit, refRange, category string) entities.LabTestParameter {
	return entities.LabTestParameter{Name: name, Unit: unit, RefRange: refRange, Category: category}
}

func defaultParameters() []entities.LabTestParameter {
	const (
		hem   = entities.CategoryHematology
		bio   = entities.CategoryBiochemistry
		micro = entities.CategoryMicrobiology
		urine = entities.CategoryUrineExamination
		cyto  = entities.CategoryCytology
		histo = entities.CategoryHistopathology
		semen = entities.CategorySemenAnalysis
	)

	return []entities.LabTestParameter{
		// Hematology
		param("Haemoglobin", "g/dL", "13.0 - 17.0", hem),
		param("Haemoglobin (Female)", "g/dL", "12.0 - 15.0", hem),
		param("Total Leucocyte Count", "cells/cumm", "4000 - 11000", hem),
		param("Neutrophils", "%", "40 - 80", hem),
		param("Lymphocytes", "%", "20 - 40", hem),
		param("Monocytes", "%", "2 - 10", hem),
		param("Eosinophils", "%", "1 - 6", hem),
		param("Basophils", "%", "0 - 2", hem),
		param("RBC Count", "million/cumm", "4.5 - 5.5", hem),
		param("Packed Cell Volume (PCV)", "%", "40 - 50", hem),
		param("Mean Corpuscular Volume (MCV)", "fL", "83 - 101", hem),
		param("MCH", "pg", "27 - 32", hem),
		param("MCHC", "g/dL", "31.5 - 34.5", hem),
		param("RDW-CV", "%", "11.6 - 14.0", hem),
		param("Platelet Count", "lakhs/cumm", "1.5 - 4.5", hem),
		param("ESR", "mm/hr", "0 - 20", hem),
		param("Reticulocyte Count", "%", "0.5 - 2.5", hem),
		param("Peripheral Smear", na, "Normocytic Normochromic", hem),
		param("Malaria Parasite (MP)", na, "Not Detected", hem),
		param("Blood Group & Rh Type", na, na, hem),
		param("Bleeding Time (BT)", "min", "1 - 5", hem),
		param("Clotting Time (CT)", "min", "5 - 10", hem),
		param("Prothrombin Time (PT)", "seconds", "11 - 16", hem),
		param("INR", na, "0.8 - 1.2", hem),
		param("APTT", "seconds", "26 - 40", hem),

		// Biochemistry
		param("Fasting Blood Sugar (FBS)", "mg/dL", "70 - 110", bio),
		param("Post Prandial Blood Sugar (PPBS)", "mg/dL", "70 - 140", bio),
		param("Random Blood Sugar (RBS)", "mg/dL", "70 - 140", bio),
		param("HbA1c (Glycated Hb)", "%", "< 5.7", bio),
		param("Blood Urea", "mg/dL", "15 - 40", bio),
		param("Serum Creatinine", "mg/dL", "0.6 - 1.3", bio),
		param("Uric Acid", "mg/dL", "3.5 - 7.2", bio),
		param("Blood Urea Nitrogen (BUN)", "mg/dL", "7 - 20", bio),
		param("Sodium", "mmol/L", "135 - 145", bio),
		param("Potassium", "mmol/L", "3.5 - 5.1", bio),
		param("Chloride", "mmol/L", "98 - 107", bio),
		param("Calcium", "mg/dL", "8.5 - 10.5", bio),
		param("Phosphorus", "mg/dL", "2.5 - 4.5", bio),
		param("Total Bilirubin", "mg/dL", "0.2 - 1.2", bio),
		param("Direct Bilirubin", "mg/dL", "0.0 - 0.3", bio),
		param("Indirect Bilirubin", "mg/dL", "0.2 - 0.9", bio),
		param("SGOT (AST)", "U/L", "5 - 40", bio),
		param("SGPT (ALT)", "U/L", "5 - 40", bio),
		param("Alkaline Phosphatase", "U/L", "44 - 147", bio),
		param("GGT", "U/L", "8 - 61", bio),
		param("Total Protein", "g/dL", "6.0 - 8.3", bio),
		param("Albumin", "g/dL", "3.5 - 5.0", bio),
		param("Globulin", "g/dL", "2.0 - 3.5", bio),
		param("A/G Ratio", na, "1.0 - 2.0", bio),
		param("Total Cholesterol", "mg/dL", "< 200", bio),
		param("Triglycerides", "mg/dL", "< 150", bio),
		param("HDL Cholesterol", "mg/dL", "> 40", bio),
		param("LDL Cholesterol", "mg/dL", "< 100", bio),
		param("VLDL Cholesterol", "mg/dL", "5 - 40", bio),
		param("TSH", "µIU/mL", "0.35 - 5.50", bio),
		param("T3 (Total)", "ng/dL", "80 - 200", bio),
		param("T4 (Total)", "µg/dL", "5.1 - 14.1", bio),
		param("Serum Amylase", "U/L", "28 - 100", bio),
		param("Serum Lipase", "U/L", "13 - 60", bio),
		param("CRP (C-Reactive Protein)", "mg/L", "< 6", bio),
		param("RA Factor", "IU/mL", "< 20", bio),
		param("ASO Titre", "IU/mL", "< 200", bio),
		param("Serum Iron", "µg/dL", "60 - 170", bio),
		param("TIBC", "µg/dL", "250 - 450", bio),
		param("Serum Ferritin", "ng/mL", "20 - 250", bio),
		param("Vitamin D (25-OH)", "ng/mL", "30 - 100", bio),
		param("Vitamin B12", "pg/mL", "211 - 911", bio),

		// Microbiology and serology
		param("Widal Test", na, "Negative (< 1:80)", micro),
		param("HIV I & II", na, "Non-Reactive", micro),
		param("HBsAg", na, "Non-Reactive", micro),
		param("HCV Antibody", na, "Non-Reactive", micro),
		param("VDRL", na, "Non-Reactive", micro),
		param("Dengue NS1 Antigen", na, "Negative", micro),
		param("Dengue IgM", na, "Negative", micro),
		param("Dengue IgG", na, "Negative", micro),
		param("Typhidot IgM", na, "Negative", micro),
		param("Urine Culture & Sensitivity", na, "No growth", micro),
		param("Blood Culture & Sensitivity", na, "No growth", micro),
		param("Gram Stain", na, na, micro),
		param("AFB Stain (Sputum)", na, "Negative", micro),

		// Urine examination
		param("Urine Colour", na, "Pale Yellow", urine),
		param("Urine Appearance", na, "Clear", urine),
		param("Urine pH", na, "4.6 - 8.0", urine),
		param("Urine Specific Gravity", na, "1.005 - 1.030", urine),
		param("Urine Protein", na, "Nil", urine),
		param("Urine Sugar", na, "Nil", urine),
		param("Urine Ketone Bodies", na, "Negative", urine),
		param("Urine Bile Salts", na, "Negative", urine),
		param("Urine Bile Pigments", na, "Negative", urine),
		param("Pus Cells", "/HPF", "0 - 5", urine),
		param("Epithelial Cells", "/HPF", "0 - 5", urine),
		param("Urine RBCs", "/HPF", "Nil", urine),
		param("Casts", "/LPF", "Nil", urine),
		param("Crystals", na, "Nil", urine),
		param("Urine Pregnancy Test (UPT)", na, "Negative", urine),
		param("Urine Microalbumin", "mg/L", "< 30", urine),

		// Cytology
		param("Pap Smear", na, "Negative for intraepithelial lesion", cyto),
		param("FNAC", na, na, cyto),
		param("Body Fluid Cytology", na, na, cyto),

		// Histopathology
		param("Biopsy (Small Specimen)", na, na, histo),
		param("Biopsy (Large Specimen)", na, na, histo),

		// Semen analysis
		param("Semen Volume", "mL", "1.5 - 5.0", semen),
		param("Semen pH", na, "7.2 - 8.0", semen),
		param("Liquefaction Time", "min", "< 60", semen),
		param("Sperm Count", "million/mL", "> 15", semen),
		param("Total Motility", "%", "> 40", semen),
		param("Progressive Motility", "%", "> 32", semen),
		param("Normal Morphology", "%", "> 4", semen),
	}
}

func defaultProfiles() []entities.LabTestProfile {
	return []entities.LabTestProfile{
		{
			Name:     "CBC (Complete Blood Count)",
			Category: entities.CategoryHematology,
			Keywords: []string{"cbc", "complete blood count", "hemogram", "haemogram"},
			Parameters: []entities.ProfileParameter{
				{Name: "Haemoglobin", Unit: "g/dL", RefRange: "13.0 - 17.0", Category: entities.CategoryHematology},
				{Name: "RBC Count", Unit: "million/cumm", RefRange: "4.5 - 5.5", Category: entities.CategoryHematology},
				{Name: "Packed Cell Volume (PCV)", Unit: "%", RefRange: "40 - 50", Category: entities.CategoryHematology, Group: "Red Cell Indices"},
				{Name: "Mean Corpuscular Volume (MCV)", Unit: "fL", RefRange: "83 - 101", Category: entities.CategoryHematology, Group: "Red Cell Indices"},
				{Name: "MCH", Unit: "pg", RefRange: "27 - 32", Category: entities.CategoryHematology, Group: "Red Cell Indices"},
				{Name: "MCHC", Unit: "g/dL", RefRange: "31.5 - 34.5", Category: entities.CategoryHematology, Group: "Red Cell Indices"},
				{Name: "RDW-CV", Unit: "%", RefRange: "11.6 - 14.0", Category: entities.CategoryHematology, Group: "Red Cell Indices"},
				{Name: "Total Leucocyte Count", Unit: "cells/cumm", RefRange: "4000 - 11000", Category: entities.CategoryHematology},
				{Name: "Neutrophils", Unit: "%", RefRange: "40 - 80", Category: entities.CategoryHematology, Group: "Differential Leucocyte Count"},
				{Name: "Lymphocytes", Unit: "%", RefRange: "20 - 40", Category: entities.CategoryHematology, Group: "Differential Leucocyte Count"},
				{Name: "Monocytes", Unit: "%", RefRange: "2 - 10", Category: entities.CategoryHematology, Group: "Differential Leucocyte Count"},
				{Name: "Eosinophils", Unit: "%", RefRange: "1 - 6", Category: entities.CategoryHematology, Group: "Differential Leucocyte Count"},
				{Name: "Basophils", Unit: "%", RefRange: "0 - 2", Category: entities.CategoryHematology, Group: "Differential Leucocyte Count"},
				{Name: "Platelet Count", Unit: "lakhs/cumm", RefRange: "1.5 - 4.5", Category: entities.CategoryHematology},
			},
		},
		{
			Name:     "LFT (Liver Function Tests)",
			Category: entities.CategoryBiochemistry,
			Keywords: []string{"lft", "liver function", "liver profile"},
			Parameters: []entities.ProfileParameter{
				{Name: "Total Bilirubin", Unit: "mg/dL", RefRange: "0.2 - 1.2", Category: entities.CategoryBiochemistry, Group: "Bilirubin"},
				{Name: "Direct Bilirubin", Unit: "mg/dL", RefRange: "0.0 - 0.3", Category: entities.CategoryBiochemistry, Group: "Bilirubin"},
				{Name: "Indirect Bilirubin", Unit: "mg/dL", RefRange: "0.2 - 0.9", Category: entities.CategoryBiochemistry, Group: "Bilirubin"},
				{Name: "SGOT (AST)", Unit: "U/L", RefRange: "5 - 40", Category: entities.CategoryBiochemistry, Group: "Liver Enzymes"},
				{Name: "SGPT (ALT)", Unit: "U/L", RefRange: "5 - 40", Category: entities.CategoryBiochemistry, Group: "Liver Enzymes"},
				{Name: "Alkaline Phosphatase", Unit: "U/L", RefRange: "44 - 147", Category: entities.CategoryBiochemistry, Group: "Liver Enzymes"},
				{Name: "GGT", Unit: "U/L", RefRange: "8 - 61", Category: entities.CategoryBiochemistry, Group: "Liver Enzymes"},
				{Name: "Total Protein", Unit: "g/dL", RefRange: "6.0 - 8.3", Category: entities.CategoryBiochemistry, Group: "Proteins"},
				{Name: "Albumin", Unit: "g/dL", RefRange: "3.5 - 5.0", Category: entities.CategoryBiochemistry, Group: "Proteins"},
				{Name: "Globulin", Unit: "g/dL", RefRange: "2.0 - 3.5", Category: entities.CategoryBiochemistry, Group: "Proteins"},
				{Name: "A/G Ratio", Unit: na, RefRange: "1.0 - 2.0", Category: entities.CategoryBiochemistry, Group: "Proteins"},
			},
		},
		{
			Name:     "KFT (Kidney Function Tests)",
			Category: entities.CategoryBiochemistry,
			Keywords: []string{"kft", "rft", "renal function", "kidney function"},
			Parameters: []entities.ProfileParameter{
				{Name: "Blood Urea", Unit: "mg/dL", RefRange: "15 - 40", Category: entities.CategoryBiochemistry},
				{Name: "Serum Creatinine", Unit: "mg/dL", RefRange: "0.6 - 1.3", Category: entities.CategoryBiochemistry},
				{Name: "Uric Acid", Unit: "mg/dL", RefRange: "3.5 - 7.2", Category: entities.CategoryBiochemistry},
				{Name: "Blood Urea Nitrogen (BUN)", Unit: "mg/dL", RefRange: "7 - 20", Category: entities.CategoryBiochemistry},
				{Name: "Sodium", Unit: "mmol/L", RefRange: "135 - 145", Category: entities.CategoryBiochemistry, Group: "Electrolytes"},
				{Name: "Potassium", Unit: "mmol/L", RefRange: "3.5 - 5.1", Category: entities.CategoryBiochemistry, Group: "Electrolytes"},
				{Name: "Chloride", Unit: "mmol/L", RefRange: "98 - 107", Category: entities.CategoryBiochemistry, Group: "Electrolytes"},
			},
		},
		{
			Name:     "Lipid Profile",
			Category: entities.CategoryBiochemistry,
			Keywords: []string{"lipid", "cholesterol profile"},
			Parameters: []entities.ProfileParameter{
				{Name: "Total Cholesterol", Unit: "mg/dL", RefRange: "< 200", Category: entities.CategoryBiochemistry},
				{Name: "Triglycerides", Unit: "mg/dL", RefRange: "< 150", Category: entities.CategoryBiochemistry},
				{Name: "HDL Cholesterol", Unit: "mg/dL", RefRange: "> 40", Category: entities.CategoryBiochemistry},
				{Name: "LDL Cholesterol", Unit: "mg/dL", RefRange: "< 100", Category: entities.CategoryBiochemistry},
				{Name: "VLDL Cholesterol", Unit: "mg/dL", RefRange: "5 - 40", Category: entities.CategoryBiochemistry},
				{Name: "Total Cholesterol / HDL Ratio", Unit: na, RefRange: "< 5.0", Category: entities.CategoryBiochemistry},
			},
		},
		{
			Name:     "Thyroid Profile (T3, T4, TSH)",
			Category: entities.CategoryBiochemistry,
			Keywords: []string{"thyroid", "tft"},
			Parameters: []entities.ProfileParameter{
				{Name: "T3 (Total)", Unit: "ng/dL", RefRange: "80 - 200", Category: entities.CategoryBiochemistry},
				{Name: "T4 (Total)", Unit: "µg/dL", RefRange: "5.1 - 14.1", Category: entities.CategoryBiochemistry},
				{Name: "TSH", Unit: "µIU/mL", RefRange: "0.35 - 5.50", Category: entities.CategoryBiochemistry},
			},
		},
		{
			Name:     "Widal Test",
			Category: entities.CategoryMicrobiology,
			Keywords: []string{"widal", "typhoid", "enteric fever"},
			Parameters: []entities.ProfileParameter{
				{Name: "S. Typhi 'O' (TO)", Unit: na, RefRange: "< 1:80", Category: entities.CategoryMicrobiology},
				{Name: "S. Typhi 'H' (TH)", Unit: na, RefRange: "< 1:160", Category: entities.CategoryMicrobiology},
				{Name: "S. Paratyphi 'A' O (AO)", Unit: na, RefRange: "< 1:80", Category: entities.CategoryMicrobiology},
				{Name: "S. Paratyphi 'A' H (AH)", Unit: na, RefRange: "< 1:160", Category: entities.CategoryMicrobiology},
				{Name: "S. Paratyphi 'B' O (BO)", Unit: na, RefRange: "< 1:80", Category: entities.CategoryMicrobiology},
				{Name: "S. Paratyphi 'B' H (BH)", Unit: na, RefRange: "< 1:160", Category: entities.CategoryMicrobiology},
			},
		},
		{
			Name:     "Urine Routine Examination",
			Category: entities.CategoryUrineExamination,
			Keywords: []string{"urine routine", "urine r/m", "complete urine", "cue"},
			Parameters: []entities.ProfileParameter{
				{Name: "Colour", Unit: na, RefRange: "Pale Yellow", Category: entities.CategoryUrineExamination, Group: "Physical Examination"},
				{Name: "Appearance", Unit: na, RefRange: "Clear", Category: entities.CategoryUrineExamination, Group: "Physical Examination"},
				{Name: "pH", Unit: na, RefRange: "4.6 - 8.0", Category: entities.CategoryUrineExamination, Group: "Physical Examination"},
				{Name: "Specific Gravity", Unit: na, RefRange: "1.005 - 1.030", Category: entities.CategoryUrineExamination, Group: "Physical Examination"},
				{Name: "Protein", Unit: na, RefRange: "Nil", Category: entities.CategoryUrineExamination, Group: "Chemical Examination"},
				{Name: "Sugar", Unit: na, RefRange: "Nil", Category: entities.CategoryUrineExamination, Group: "Chemical Examination"},
				{Name: "Ketone Bodies", Unit: na, RefRange: "Negative", Category: entities.CategoryUrineExamination, Group: "Chemical Examination"},
				{Name: "Bile Salts", Unit: na, RefRange: "Negative", Category: entities.CategoryUrineExamination, Group: "Chemical Examination"},
				{Name: "Bile Pigments", Unit: na, RefRange: "Negative", Category: entities.CategoryUrineExamination, Group: "Chemical Examination"},
				{Name: "Pus Cells", Unit: "/HPF", RefRange: "0 - 5", Category: entities.CategoryUrineExamination, Group: "Microscopic Examination"},
				{Name: "Epithelial Cells", Unit: "/HPF", RefRange: "0 - 5", Category: entities.CategoryUrineExamination, Group: "Microscopic Examination"},
				{Name: "RBCs", Unit: "/HPF", RefRange: "Nil", Category: entities.CategoryUrineExamination, Group: "Microscopic Examination"},
				{Name: "Casts", Unit: "/LPF", RefRange: "Nil", Category: entities.CategoryUrineExamination, Group: "Microscopic Examination"},
				{Name: "Crystals", Unit: na, RefRange: "Nil", Category: entities.CategoryUrineExamination, Group: "Microscopic Examination"},
			},
		},
		{
			Name:     "Semen Analysis",
			Category: entities.CategorySemenAnalysis,
			Keywords: []string{"semen", "seminal fluid", "sperm"},
			Parameters: []entities.ProfileParameter{
				{Name: "Volume", Unit: "mL", RefRange: "1.5 - 5.0", Category: entities.CategorySemenAnalysis, Group: "Physical Examination"},
				{Name: "pH", Unit: na, RefRange: "7.2 - 8.0", Category: entities.CategorySemenAnalysis, Group: "Physical Examination"},
				{Name: "Liquefaction Time", Unit: "min", RefRange: "< 60", Category: entities.CategorySemenAnalysis, Group: "Physical Examination"},
				{Name: "Sperm Count", Unit: "million/mL", RefRange: "> 15", Category: entities.CategorySemenAnalysis, Group: "Microscopic Examination"},
				{Name: "Total Motility", Unit: "%", RefRange: "> 40", Category: entities.CategorySemenAnalysis, Group: "Microscopic Examination"},
				{Name: "Progressive Motility", Unit: "%", RefRange: "> 32", Category: entities.CategorySemenAnalysis, Group: "Microscopic Examination"},
				{Name: "Normal Morphology", Unit: "%", RefRange: "> 4", Category: entities.CategorySemenAnalysis, Group: "Microscopic Examination"},
				{Name: "Pus Cells", Unit: "/HPF", RefRange: "0 - 5", Category: entities.CategorySemenAnalysis, Group: "Microscopic Examination"},
			},
		},
		{
			Name:     "Coagulation Profile",
			Category: entities.CategoryHematology,
			Keywords: []string{"coagulation", "pt inr", "bt ct", "aptt"},
			Parameters: []entities.ProfileParameter{
				{Name: "Bleeding Time (BT)", Unit: "min", RefRange: "1 - 5", Category: entities.CategoryHematology},
				{Name: "Clotting Time (CT)", Unit: "min", RefRange: "5 - 10", Category: entities.CategoryHematology},
				{Name: "Prothrombin Time (PT)", Unit: "seconds", RefRange: "11 - 16", Category: entities.CategoryHematology},
				{Name: "INR", Unit: na, RefRange: "0.8 - 1.2", Category: entities.CategoryHematology},
				{Name: "APTT", Unit: "seconds", RefRange: "26 - 40", Category: entities.CategoryHematology},
			},
		},
		{
			Name:     "Serum Electrolytes",
			Category: entities.CategoryBiochemistry,
			Keywords: []string{"electrolytes", "na k cl"},
			Parameters: []entities.ProfileParameter{
				{Name: "Sodium", Unit: "mmol/L", RefRange: "135 - 145", Category: entities.CategoryBiochemistry},
				{Name: "Potassium", Unit: "mmol/L", RefRange: "3.5 - 5.1", Category: entities.CategoryBiochemistry},
				{Name: "Chloride", Unit: "mmol/L", RefRange: "98 - 107", Category: entities.CategoryBiochemistry},
			},
		},
		{
			Name:     "Diabetic Profile",
			Category: entities.CategoryBiochemistry,
			Keywords: []string{"diabetic", "diabetes", "sugar profile"},
			Parameters: []entities.ProfileParameter{
				{Name: "Fasting Blood Sugar (FBS)", Unit: "mg/dL", RefRange: "70 - 110", Category: entities.CategoryBiochemistry},
				{Name: "Post Prandial Blood Sugar (PPBS)", Unit: "mg/dL", RefRange: "70 - 140", Category: entities.CategoryBiochemistry},
				{Name: "HbA1c (Glycated Hb)", Unit: "%", RefRange: "< 5.7", Category: entities.CategoryBiochemistry},
			},
		},
		{
			Name:     "Iron Studies",
			Category: entities.CategoryBiochemistry,
			Keywords: []string{"iron profile", "anaemia profile"},
			Parameters: []entities.ProfileParameter{
				{Name: "Serum Iron", Unit: "µg/dL", RefRange: "60 - 170", Category: entities.CategoryBiochemistry},
				{Name: "TIBC", Unit: "µg/dL", RefRange: "250 - 450", Category: entities.CategoryBiochemistry},
				{Name: "Transferrin Saturation", Unit: "%", RefRange: "20 - 50", Category: entities.CategoryBiochemistry},
				{Name: "Serum Ferritin", Unit: "ng/mL", RefRange: "20 - 250", Category: entities.CategoryBiochemistry},
			},
		},
		{
			Name:     "Dengue Profile",
			Category: entities.CategoryMicrobiology,
			Keywords: []string{"dengue"},
			Parameters: []entities.ProfileParameter{
				{Name: "Dengue NS1 Antigen", Unit: na, RefRange: "Negative", Category: entities.CategoryMicrobiology},
				{Name: "Dengue IgM", Unit: na, RefRange: "Negative", Category: entities.CategoryMicrobiology},
				{Name: "Dengue IgG", Unit: na, RefRange: "Negative", Category: entities.CategoryMicrobiology},
				{Name: "Platelet Count", Unit: "lakhs/cumm", RefRange: "1.5 - 4.5", Category: entities.CategoryHematology},
			},
		},
	}
}
