package schema

import "gi-scribe/models"

// SectionBase maps each paper section to the labels it always reads,
// regardless of category. Only universal and closing labels appear here;
// category material enters via SectionExtensions.
var SectionBase = map[string][]string{
	models.SectionAbstract: {
		LabelProductName,
		LabelProductCategory,
		LabelRegion,
		LabelCommonNames,
		"Why is this product special to this region? (Explain the connection between geography and product uniqueness)",
	},
	models.SectionIntroduction: {
		LabelProductName,
		LabelProductCategory,
		LabelRegion,
		"State/Province (Primary state or province of production)",
		"Production Districts (List all districts involved in traditional production)",
		"Specific Geographic Boundaries [Exact boundaries of the geographical area (villages, taluks, coordinates if available)]",
		"Why is this product special to this region? (Explain the connection between geography and product uniqueness)",
		"Production History (How long has this product been made in this region?)",
		"Applicant/Orginization Name",
		"Applicant Type (Can be more than one option)",
		"Gmail ID",
		"Phone Number (With country code)",
		"Complete Address",
	},
	models.SectionLiteratureReview: {
		LabelProductName,
		LabelCommonNames,
		"Historical Documents (Any historical references, documents, or evidence)",
		"Cultural Evolution  (How has production evolved while maintaining traditional character?)",
		"Production History (How long has this product been made in this region?)",
	},
	models.SectionMethodology: {
		LabelProductName,
		LabelRegion,
		"Specific Geographic Boundaries [Exact boundaries of the geographical area (villages, taluks, coordinates if available)]",
	},
	models.SectionResults: {
		LabelProductName,
		"Producer Income (Average annual income per producer from this product )",
		"Employment Generation (Number of people employed directly and indirectly)",
		"Regional Economic Impact (Overall economic contribution to the region)",
	},
	models.SectionConclusion: {
		LabelProductName,
		LabelRegion,
		"Current Challenges (Main challenges facing production and marketing)",
		"Growth Potential (Potential for expanding production and markets)",
		"Support Needed ( What support is needed for development?)",
		"Product Photos ( High-quality photos of the product)",
		"Production Process Photos (Photos showing production/making process)",
		"Supporting Documents (Any certificates, awards, research papers, or other evidence)",
		"Applicant Declaration",
		LabelUniqueID,
	},
}

// SectionExtension lists the category labels added to the methodology and
// results sections. Other sections never receive category material.
type SectionExtension struct {
	Methodology []string
	Results     []string
}

// SectionExtensions splits each conditional pool between methodology
// (how the product is made) and results (what the product is and yields).
var SectionExtensions = map[models.Category]SectionExtension{
	models.CategoryAgricultural: {
		Methodology: []string{
			"Crop/Plant Type (Scientific name and variety of the plant/crop)",
			"Soil Requirements (Specific soil type, pH, and conditions needed for cultivation)",
			"Climate Requirements ( Temperature, rainfall, humidity requirements for optimal growth )",
			"Traditional Growing Methods (Traditional cultivation practices passed down through generations)",
			"Seeds/Planting Material (Source and characteristics of traditional seeds or planting material used)",
			"Natural Pest Control (Traditional methods of pest and disease management)",
			"Harvest Season [When is the product typically harvested? (months/seasons)]",
			"Post-Harvest Processing [Steps taken immediately after harvest (drying, cleaning, sorting)]",
			"Traditional Storage Methods ( How the product is traditionally stored and preserved)",
			"Quality Grading (Traditional methods of quality assessment and grading)",
		},
		Results: []string{
			"Physical Characteristics( Describe size, color, shape, texture of the agricultural product )",
			"Taste & Aroma Profile (Detailed description of taste, flavor, and aromatic properties)",
			"Nutritional Properties (Nutritional content, vitamins, minerals, and health benefits)",
			"Average Yield per Acre (Typical production quantity per unit area)",
			"Total Annual Production (Total quantity produced annually in the region)",
			"Number of Farmers Involved (Approximate number of farmers/producers in the region)",
			"Price Premium ( How much more does this product sell for compared to similar products from other regions?)",
			"Export Markets (Countries/regions where this product is exported)",
			"Farmer Income Impact (How has this product improved farmer incomes and livelihoods?)",
		},
	},
	models.CategoryFood: {
		Methodology: []string{
			"Food Category",
			"Main Ingredients (List all primary ingredients and their sources)",
			"Traditional Recipe ( Detailed traditional recipe or preparation method )",
			"Secret/Special Techniques (Any unique techniques or secrets that make this product special)",
			"Traditional Equipment ( Special equipment, utensils, or tools used in preparation)",
			"Aging/Fermentation Process (If applicable, describe aging, fermentation, or curing processes)",
			"Quality Control in Preparation ( How is quality maintained during preparation?)",
			"Local Raw Materials (Which ingredients must come from the specific geographical region?)",
			"Seasonal Availability (How does seasonality affect availability of ingredients and production?)",
			"Traditional Suppliers (Who are the traditional suppliers of raw materials?)",
		},
		Results: []string{
			"Taste Profile (Detailed description of taste, texture, and sensory characteristics)",
			"Nutritional Benefits (Health benefits, nutritional content, medicinal properties if any)",
			"Shelf Life ( How long does the product stay fresh under normal conditions?)",
			"Festival/Ceremonial Use (Is this food associated with specific festivals, ceremonies, or cultural events?)",
			"Traditional Consumption Patterns  (How and when is this food traditionally consumed?)",
			"Cultural Stories/Legends (Any cultural stories, legends, or folklore associated with this food)",
			"Daily/Monthly Production  (Typical production quantities per day or month)",
			"Number of Traditional Producers (How many families/businesses are involved in traditional production?)",
			"Market Reach (Local, regional, national, or international market presence)",
		},
	},
	models.CategoryHandicraft: {
		Methodology: []string{
			"Type of Handicraft",
			"Materials Used  (All raw materials used and their local sources)",
			"Manufacturing Process (Step-by-step description of the traditional making process)",
			"Special Tools & Equipment (Traditional tools and equipment used by artisans)",
			"Skill Requirements (What specific skills and training do artisans need?)",
			"Time to Create (How long does it take to create one piece?)",
			"Skill Transfer Method (How are skills passed down to new generations?)",
			"Training Period (How long does it take to train a new artisan?)",
		},
		Results: []string{
			"Product Dimensions (Typical size and dimensions of the finished product)",
			"Distinctive Design Features (What makes the design unique to this region?)",
			"Functional Use ( How is this product used in daily life or special occasions?)",
			"Design Patterns/Motifs (Traditional patterns, motifs, or designs that are characteristic of the region)",
			"Number of Active Artisans (How many artisans are currently practicing this craft?)",
			"Community Background ( Which communities/families have traditionally practiced this craft?)",
			"Historical Significance (Historical importance and cultural significance of this craft)",
			"Traditional Uses in Society  (How was/is this product used in traditional society?)",
			"Symbolic Meaning (Any symbolic or spiritual significance of the craft)",
			"Production Capacity (How many pieces can an artisan produce per month?)",
			"Price Range  (Typical price range for different sizes/types)",
			"Market Challenges ( What challenges do artisans face in marketing their products?)",
		},
	},
	models.CategoryTextile: {
		Methodology: []string{
			"Type of Textile*",
			"Fiber Type (Thread count, weight, dimensions, thickness specifications)",
			"Traditional Loom Type ( Type of loom used and its characteristics)",
			"Weaving Technique ( Specific weaving techniques and methods used)",
			"Thread Preparation (How are threads prepared, spun, and treated before weaving?)",
			"Dyeing Process (Traditional dyeing methods and natural dye sources)",
			"Time to Complete ( How long does it take to complete one piece?)",
		},
		Results: []string{
			"Color Palette (Traditional colors used and sources of natural dyes)",
			"Pattern/Design Characteristics (Distinctive patterns, motifs, or design elements)",
			"Weaver Community ( Which communities have traditionally practiced this weaving?)",
			"Number of Active Weavers (Current number of practicing weavers)",
			"Skill Complexity (Level of skill required and training needed)",
			"Design Creation Process (How are traditional designs created and modified?)",
			"Traditional Uses (How is this textile traditionally used in society?)",
			"Ceremonial Significance (Use in weddings, festivals, or religious ceremonies)",
			"Social Status Indicators ( Does this textile indicate social status or community membership?)",
			"Production per Weaver (Average monthly production per weaver)",
			"Raw Material Costs ( Cost and availability of raw materials)",
			"Market Demand ( Current market demand and customer base)",
		},
	},
	models.CategoryNatural: {
		Methodology: []string{
			"Product Type",
			"Source Plant/Material (Scientific name and description of source plant or natural material)",
			"Collection Season [ When is the raw material collected? (months/seasons)]",
			"Collection Methods  (Traditional methods of collection or harvesting)",
			"Processing Technique (How is the final product extracted or processed?)",
			"Traditional Equipment (Tools and equipment used in traditional processing)",
			"Quality Assessment (How is quality determined and maintained?)",
			"Habitat Requirements (Specific environmental conditions needed for the source material)",
			"Sustainable Practices (Traditional conservation and sustainability practices)",
			"Seasonal Variations ( How do seasonal changes affect product quality?)",
			"Geographic Specificity (Why can this product only be obtained from this specific region?)",
			"Indigenous Knowledge (Traditional knowledge systems associated with this product)",
			"Community Guardians ( Which communities have traditionally been guardians of this knowledge?)",
			"Yield per Collection ( Typical quantity obtained per collection/processing cycle)",
		},
		Results: []string{
			"Active Compounds (Key chemical compounds or active ingredients)",
			"Physical Properties (Color, consistency, aroma, and physical characteristics)",
			"Traditional Uses (How has this product been traditionally used?)",
			"Traditional Applications (Detailed traditional uses in medicine, cosmetics, or daily life)",
			"Market Applications ( Modern commercial applications and uses)",
			"Value Addition Potential (Opportunities for processing into higher-value products)",
		},
	},
}

// labelAliases maps drifted label variants seen in real response sheets to
// their canonical labels. Matched after normalization.
var labelAliases = map[string]string{
	"Select Product Category \n\nChoose the category that best describes your product": LabelProductCategory,
}
